package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

// renderCustomers pinta el listado como tabla alineada.
func renderCustomers(w io.Writer, customers []entity.Customer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "N° REGISTRO\tEMPRESA\tCONTACTO\tEMAIL\tTELÉFONO\tID")
	for _, c := range customers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			c.RegistrationNumber, c.CompanyName, c.ContactPerson, c.Email, c.Phone, c.ID)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d clientes\n", len(customers))
}

// renderCustomer pinta el detalle de un cliente.
func renderCustomer(w io.Writer, c *entity.Customer) {
	fmt.Fprintf(w, "ID:           %s\n", c.ID)
	fmt.Fprintf(w, "N° Registro:  %s\n", c.RegistrationNumber)
	fmt.Fprintf(w, "Empresa:      %s\n", c.CompanyName)
	fmt.Fprintf(w, "Contacto:     %s\n", c.ContactPerson)
	fmt.Fprintf(w, "Email:        %s\n", c.Email)
	fmt.Fprintf(w, "Teléfono:     %s\n", strconv.FormatInt(c.Phone, 10))
	fmt.Fprintf(w, "Dirección:    %s\n", c.Address)
	if c.Description != "" {
		fmt.Fprintf(w, "Descripción:  %s\n", c.Description)
	}
	fmt.Fprintf(w, "Creado:       %s\n", c.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(w, "Actualizado:  %s\n", c.UpdatedAt.Format("02/01/2006 15:04"))
}

// renderProfile pinta el perfil del negocio, o el estado "crear primero".
func renderProfile(w io.Writer, p *entity.BusinessProfile) {
	if p == nil {
		fmt.Fprintln(w, "El negocio aún no tiene perfil. Créelo con 'gestion profile create'.")
		return
	}
	fmt.Fprintf(w, "Negocio:      %s\n", p.BusinessName)
	fmt.Fprintf(w, "N° Registro:  %s\n", p.RegistrationNumber)
	fmt.Fprintf(w, "Dirección:    %s\n", p.Address)
	fmt.Fprintf(w, "Teléfonos:    %s\n", strings.Join(p.ContactNumbers, ", "))
	fmt.Fprintf(w, "Emails:       %s\n", strings.Join(p.EmailAddresses, ", "))
	if p.Logo != "" {
		fmt.Fprintf(w, "Logo:         %s\n", p.Logo)
	}
}
