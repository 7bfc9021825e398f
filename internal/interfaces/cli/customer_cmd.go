package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
	"github.com/jhoicas/gestion-cli/internal/domain/entity"
)

func newCustomersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Registro de clientes: listado, detalle y mutaciones",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}
	cmd.AddCommand(
		newCustomersListCmd(app),
		newCustomersGetCmd(app),
		newCustomersCreateCmd(app),
		newCustomersUpdateCmd(app),
		newCustomersDeleteCmd(app),
		newCustomersExportPDFCmd(app),
	)
	return cmd
}

func newCustomersListCmd(app *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los clientes registrados",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Customers.List(cmd.Context())
			if err != nil {
				return err
			}
			if filter != "" {
				filtered := make([]entity.Customer, 0, len(list))
				for _, c := range list {
					if matchesFilter(c, filter) {
						filtered = append(filtered, c)
					}
				}
				list = filtered
			}
			renderCustomers(app.Out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "filtro por empresa, contacto, email o n° de registro (insensible a acentos)")
	return cmd
}

func newCustomersGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra el detalle de un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Customers.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderCustomer(app.Out, c)
			return nil
		},
	}
}

// customerFlags registra los flags del formulario de cliente sobre in.
func customerFlags(cmd *cobra.Command, in *dto.CustomerInput) {
	cmd.Flags().StringVar(&in.CompanyName, "company", "", "nombre de la empresa")
	cmd.Flags().StringVar(&in.ContactPerson, "contact", "", "persona de contacto")
	cmd.Flags().StringVar(&in.Email, "email", "", "email de contacto")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "teléfono (mínimo 10 dígitos)")
	cmd.Flags().StringVar(&in.Address, "address", "", "dirección")
	cmd.Flags().StringVar(&in.Description, "description", "", "descripción (opcional)")
}

func newCustomersCreateCmd(app *App) *cobra.Command {
	var in dto.CustomerInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un cliente",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Customers.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Cliente creado: %s (%s)\n", created.CompanyName, created.RegistrationNumber)
			return nil
		},
	}
	customerFlags(cmd, &in)
	return cmd
}

func newCustomersUpdateCmd(app *App) *cobra.Command {
	var in dto.CustomerInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualiza un cliente (los flags omitidos conservan su valor)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// El backend espera el payload completo en PUT: se parte del
			// registro actual y se pisan solo los flags provistos.
			current, err := app.Customers.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			merged := dto.CustomerInput{
				CompanyName:   current.CompanyName,
				ContactPerson: current.ContactPerson,
				Email:         current.Email,
				Phone:         strconv.FormatInt(current.Phone, 10),
				Address:       current.Address,
				Description:   current.Description,
			}
			flagTargets := map[string]*string{
				"company":     &merged.CompanyName,
				"contact":     &merged.ContactPerson,
				"email":       &merged.Email,
				"phone":       &merged.Phone,
				"address":     &merged.Address,
				"description": &merged.Description,
			}
			inValues := map[string]string{
				"company":     in.CompanyName,
				"contact":     in.ContactPerson,
				"email":       in.Email,
				"phone":       in.Phone,
				"address":     in.Address,
				"description": in.Description,
			}
			for name, dst := range flagTargets {
				if cmd.Flags().Changed(name) {
					*dst = inValues[name]
				}
			}
			updated, err := app.Customers.Update(cmd.Context(), args[0], merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Cliente actualizado: %s\n", updated.CompanyName)
			return nil
		},
	}
	customerFlags(cmd, &in)
	return cmd
}

func newCustomersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Customers.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, msg)
			return nil
		},
	}
}

func newCustomersExportPDFCmd(app *App) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-pdf",
		Short: "Exporta el listado de clientes a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Customers.List(cmd.Context())
			if err != nil {
				return err
			}
			// El nombre del negocio encabeza el PDF; si no hay perfil se
			// usa un título genérico.
			businessName := ""
			if p, err := app.Profile.Get(cmd.Context()); err == nil && p != nil {
				businessName = p.BusinessName
			}
			raw, err := app.PDF.Generate(businessName, list)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(app.Out, "PDF generado: %s (%d clientes)\n", out, len(list))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "clientes.pdf", "ruta del PDF de salida")
	return cmd
}
