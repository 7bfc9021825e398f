// Package pdf genera el listado de clientes en PDF para compartir o
// archivar fuera de la consola.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Registro | Empresa | Contacto | Email | Teléfono  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de clientes                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CustomerListGenerator genera el PDF del listado de clientes con Maroto v2.
type CustomerListGenerator struct{}

// NewCustomerListGenerator construye el generador.
func NewCustomerListGenerator() *CustomerListGenerator { return &CustomerListGenerator{} }

// Generate genera el PDF y devuelve sus bytes. businessName puede ser vacío
// si la cuenta aún no tiene perfil.
func (g *CustomerListGenerator) Generate(businessName string, customers []entity.Customer) ([]byte, error) {
	if businessName == "" {
		businessName = "Listado de clientes"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado de clientes", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(businessName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, c := range customers {
		m.AddRows(customerRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(customers)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func headerRow(businessName string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Clientes registrados", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("N° Registro", header)),
		col.New(3).Add(text.New("Empresa", header)),
		col.New(2).Add(text.New("Contacto", header)),
		col.New(3).Add(text.New("Email", header)),
		col.New(2).Add(text.New("Teléfono", header)),
	)
}

func customerRow(c entity.Customer) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New(c.RegistrationNumber, cell)),
		col.New(3).Add(text.New(c.CompanyName, cell)),
		col.New(2).Add(text.New(c.ContactPerson, cell)),
		col.New(3).Add(text.New(c.Email, cell)),
		col.New(2).Add(text.New(strconv.FormatInt(c.Phone, 10), cell)),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d clientes", total), props.Text{
				Size: 9, Style: fontstyle.Bold, Top: 2,
			}),
		),
	)
}
