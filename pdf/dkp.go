// Package pdf renders the bill-of-sale document (DKP) to a fixed A4 layout.
package pdf

import (
	"bytes"
	_ "embed"
	"fmt"

	"car_dealership_api/models"

	"github.com/jung-kurt/gofpdf"
)

// The document text is Russian, which the core PDF fonts cannot encode, so a
// Cyrillic-capable face ships inside the binary.
var (
	//go:embed fonts/DejaVuSans.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSans-Bold.ttf
	fontBold []byte
)

// RenderDKP lays out one DKP row on a single page. The output is byte-stable
// for a given row: the PDF creation and modification dates are pinned to the
// row's own timestamp instead of time.Now.
func RenderDKP(d *models.DKP) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetCreationDate(d.CreatedAt.UTC())
	p.SetModificationDate(d.CreatedAt.UTC())
	p.SetTitle(fmt.Sprintf("DKP %d", d.DKPID), true)

	p.AddUTF8FontFromBytes("DejaVu", "", fontRegular)
	p.AddUTF8FontFromBytes("DejaVu", "B", fontBold)
	p.AddPage()

	p.SetFont("DejaVu", "B", 14)
	p.MultiCell(0, 8, "ДОГОВОР КУПЛИ-ПРОДАЖИ ТРАНСПОРТНОГО СРЕДСТВА", "", "C", false)
	p.Ln(4)

	field := func(label, value string) {
		p.SetFont("DejaVu", "B", 11)
		p.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		p.SetFont("DejaVu", "", 11)
		p.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
	section := func(title string) {
		p.Ln(3)
		p.SetFont("DejaVu", "B", 12)
		p.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	}

	field("Место составления:", d.Place)
	field("Дата:", d.Date)

	section("Продавец")
	field("ФИО:", d.OwnerFullname)

	section("Покупатель")
	field("ФИО:", d.BuyerFullname)

	section("Транспортное средство")
	field("VIN:", d.VIN)
	field("Марка и модель:", d.CarBrandModel)
	field("Год изготовления:", fmt.Sprintf("%d", d.CarYear))
	field("Модель/№ двигателя:", d.EngineNumber)
	field("Шасси:", d.ChassisNumber)
	field("Кузов:", d.BodyNumber)
	field("Цвет:", d.Color)
	field("Стоимость ТС:", fmt.Sprintf("%.2f руб.", d.Price))

	section("Количество экземпляров")
	field("Экземпляров:", fmt.Sprintf("%d", d.Copies))

	p.Ln(10)
	p.SetFont("DejaVu", "", 11)
	p.CellFormat(95, 8, "Продавец: ____________________", "", 0, "L", false, 0, "")
	p.CellFormat(0, 8, "Покупатель: ____________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
