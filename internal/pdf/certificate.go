// Package pdf renders the certificate-style document for an achievement.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/campustrack/achievement_service/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

func RenderAchievement(a *domain.Achievement) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(a.Title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 14, "Achievement Record", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 9, a.Title, "", "C", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 11)
	if a.Student != nil {
		line := a.Student.Name
		if a.Student.RollNo != nil {
			line += " (" + *a.Student.RollNo + ")"
		}
		doc.CellFormat(0, 7, "Submitted by: "+line, "", 1, "C", false, 0, "")
	}
	if a.Category != nil {
		doc.CellFormat(0, 7, "Category: "+a.Category.Name, "", 1, "C", false, 0, "")
	}
	doc.CellFormat(0, 7, "Date: "+a.Date.Format("02 Jan 2006"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, a.Description, "", "L", false)
	doc.Ln(4)

	if len(a.Participants) > 0 {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 7, "Team members", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		for _, p := range a.Participants {
			doc.CellFormat(0, 6, "- "+p.Name, "", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	doc.SetFont("Helvetica", "B", 12)
	status := strings.ToUpper(a.Status)
	if a.Status == domain.AchievementVerified && a.VerifiedBy != nil && a.VerifiedDate != nil {
		status = fmt.Sprintf("VERIFIED by %s on %s", a.VerifiedBy.Name, a.VerifiedDate.Format("02 Jan 2006"))
	}
	doc.CellFormat(0, 8, "Status: "+status, "", 1, "L", false, 0, "")
	doc.Ln(4)

	embedImage(doc, a.Certificate)
	embedImage(doc, a.Photo)
	for _, pc := range a.ParticipantCertificates {
		embedImage(doc, pc.File)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// embedImage inlines locally stored jpeg/png attachments; anything else
// (pdf blobs, remote storage) is referenced by name only.
func embedImage(doc *gofpdf.Fpdf, f *domain.File) {
	if f == nil {
		return
	}

	var imgType string
	switch f.MimeType {
	case "image/jpeg":
		imgType = "JPG"
	case "image/png":
		imgType = "PNG"
	}

	if imgType == "" || f.Path == "" {
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 6, "Attachment: "+f.OriginalName, "", 1, "L", false, 0, "")
		return
	}

	b, err := os.ReadFile(f.Path)
	if err != nil {
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, 6, "Attachment: "+f.OriginalName, "", 1, "L", false, 0, "")
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	doc.RegisterImageOptionsReader(f.Filename, opts, bytes.NewReader(b))
	doc.ImageOptions(f.Filename, 25, doc.GetY(), 160, 0, true, opts, 0, "")
	doc.Ln(4)
}
