package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Perfil del negocio: consulta, edición y logo",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireSession(app)
		},
	}
	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileCreateCmd(app),
		newProfileUpdateCmd(app),
		newProfileUploadLogoCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Muestra el perfil del negocio",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			renderProfile(app.Out, p)
			return nil
		},
	}
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var in dto.ProfileInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea el perfil del negocio",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Profile.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Perfil creado: %s\n", created.BusinessName)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.BusinessName, "business-name", "", "nombre del negocio")
	cmd.Flags().StringVar(&in.RegistrationNumber, "registration-number", "", "número de registro")
	cmd.Flags().StringVar(&in.Address, "address", "", "dirección")
	cmd.Flags().StringArrayVar(&in.ContactNumbers, "phone", nil, "teléfono de contacto (repetible, al menos uno)")
	cmd.Flags().StringArrayVar(&in.EmailAddresses, "email", nil, "email de contacto (repetible, al menos uno)")
	cmd.Flags().StringVar(&in.Logo, "logo", "", "URL del logo (opcional)")
	return cmd
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var (
		businessName       string
		registrationNumber string
		address            string
		phones             []string
		emails             []string
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Actualiza el perfil (solo los flags provistos viajan al backend)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch dto.ProfilePatch
			if cmd.Flags().Changed("business-name") {
				patch.BusinessName = &businessName
			}
			if cmd.Flags().Changed("registration-number") {
				patch.RegistrationNumber = &registrationNumber
			}
			if cmd.Flags().Changed("address") {
				patch.Address = &address
			}
			if cmd.Flags().Changed("phone") {
				patch.ContactNumbers = &phones
			}
			if cmd.Flags().Changed("email") {
				patch.EmailAddresses = &emails
			}
			updated, err := app.Profile.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Perfil actualizado: %s\n", updated.BusinessName)
			return nil
		},
	}
	cmd.Flags().StringVar(&businessName, "business-name", "", "nombre del negocio")
	cmd.Flags().StringVar(&registrationNumber, "registration-number", "", "número de registro")
	cmd.Flags().StringVar(&address, "address", "", "dirección")
	cmd.Flags().StringArrayVar(&phones, "phone", nil, "teléfonos de contacto (reemplaza la lista completa)")
	cmd.Flags().StringArrayVar(&emails, "email", nil, "emails de contacto (reemplaza la lista completa)")
	return cmd
}

func newProfileUploadLogoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload-logo <archivo>",
		Short: "Sube el logo del negocio (imagen, máximo 5 MiB)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("leer %s: %w", args[0], err)
			}
			url, err := app.Profile.UploadLogo(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Logo subido: %s\n", url)
			return nil
		},
	}
}
