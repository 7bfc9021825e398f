package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-cli/internal/application/dto"
)

func newLoginCmd(app *App) *cobra.Command {
	var in dto.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend y persiste la identidad",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Auth.Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Sesión iniciada como %s <%s>\n", s.Name, s.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var in dto.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crea la cuenta y deja la sesión iniciada",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Cuenta creada. Sesión iniciada como %s <%s>\n", s.Name, s.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "nombre completo")
	cmd.Flags().StringVar(&in.Email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&in.Password, "password", "", "contraseña")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm-password", "", "confirmación de contraseña")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y descarta la caché local",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Sesión cerrada.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra la identidad de la sesión activa",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Auth.Current()
			if err != nil {
				return fmt.Errorf("no hay sesión activa: inicie sesión con 'gestion login'")
			}
			fmt.Fprintf(app.Out, "%s <%s> (id %s)\n", s.Name, s.Email, s.ID)
			return nil
		},
	}
}
