// Package cli es la capa de vistas de la consola: comandos cobra que solo
// llaman a los casos de uso y pintan el resultado. Aquí no hay reglas de
// negocio ni acceso directo a la caché.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-cli/internal/application/auth"
	"github.com/jhoicas/gestion-cli/internal/application/usecase"
	"github.com/jhoicas/gestion-cli/internal/domain"
	"github.com/jhoicas/gestion-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-cli/pkg/logger"
)

// App dependencias que comparten todos los comandos.
type App struct {
	Log       *logger.Logger
	Auth      *auth.AuthUseCase
	Customers *usecase.CustomerUseCase
	Profile   *usecase.ProfileUseCase
	PDF       *pdf.CustomerListGenerator
	Out       io.Writer // stdout inyectable en tests
}

// NewRootCmd arma el árbol de comandos de la consola.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gestion",
		Short:         "Consola de gestión del negocio: clientes y perfil",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newCustomersCmd(app),
		newProfileCmd(app),
	)
	return root
}

// requireSession guarda de ruta: los comandos protegidos exigen sesión
// iniciada, igual que las vistas protegidas redirigen al login.
func requireSession(app *App) error {
	if _, err := app.Auth.Current(); err != nil {
		if err == domain.ErrNoSession {
			return fmt.Errorf("no hay sesión activa: inicie sesión con 'gestion login'")
		}
		return err
	}
	return nil
}
