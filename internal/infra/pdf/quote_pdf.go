package pdf

import (
	"bytes"
	"fmt"

	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/pkg/money"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"github.com/go-pdf/fpdf"
)

// Renderer produces the one-page quote document emailed to clients.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ commands.QuotePDFRenderer = (*Renderer)(nil)

func (r *Renderer) Render(view *queries.QuoteView, companyName string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Devis - "+companyName), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, tr(companyName), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Devis n° %s", shortID(view))), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Date de départ : "+view.DepartureDate.Format("02/01/2006")+" à "+view.DepartureTime), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, tr("Trajet"), "B", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, tr("Départ : "+view.PickupLabel), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Arrivée : "+view.DropoffLabel), "", 1, "L", false, 0, "")
	if view.HasReturn {
		if view.ReturnToSameAddress {
			doc.CellFormat(0, 6, tr("Retour : même adresse"), "", 1, "L", false, 0, "")
		} else if view.ReturnLabel != nil {
			doc.CellFormat(0, 6, tr("Retour : "+*view.ReturnLabel), "", 1, "L", false, 0, "")
		}
	}
	doc.CellFormat(0, 6, tr(fmt.Sprintf("Distance totale : %.1f km", view.Breakdown.TotalKm)), "", 1, "L", false, 0, "")
	doc.Ln(4)

	if view.ClientName != nil {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, tr("Client"), "B", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 6, tr(*view.ClientName), "", 1, "L", false, 0, "")
		doc.Ln(4)
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, tr("Détail du prix"), "B", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)

	b := view.Breakdown
	r.priceLine(doc, tr, "Trajet aller (HT)", b.OneWayFareHT)
	if view.HasReturn {
		r.priceLine(doc, tr, "Trajet retour (HT)", b.ReturnFareHT)
	}
	if view.HasWaiting {
		r.priceLine(doc, tr, fmt.Sprintf("Attente %d min (HT)", view.WaitingMinutes), b.WaitingFareHT)
	}
	if b.NightSurchargeAmount > 0 {
		r.priceLine(doc, tr, "dont majoration de nuit", b.NightSurchargeAmount)
	}
	if b.SundaySurchargeAmount > 0 {
		r.priceLine(doc, tr, "dont majoration dimanche/férié", b.SundaySurchargeAmount)
	}
	doc.Ln(2)
	r.priceLine(doc, tr, "Total HT", b.TotalHT)
	r.priceLine(doc, tr, "TVA", b.TotalVAT)
	doc.SetFont("Helvetica", "B", 12)
	r.priceLine(doc, tr, "Total TTC", b.TotalTTC)

	if b.MinimumFareApplied {
		doc.Ln(4)
		doc.SetFont("Helvetica", "I", 9)
		doc.CellFormat(0, 5, tr("Forfait minimum appliqué."), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render quote PDF")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) priceLine(doc *fpdf.Fpdf, tr func(string) string, label string, amount float64) {
	doc.CellFormat(120, 6, tr(label), "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, tr(money.FormatEUR(money.Round2(amount))), "", 1, "R", false, 0, "")
}

func shortID(view *queries.QuoteView) string {
	s := view.ID.String()
	return s[:8]
}
