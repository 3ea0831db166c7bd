package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}
	if err := newRootCommand(&app{out: os.Stdout}).Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCommand arma el árbol de comandos. Las dependencias se construyen en Before
// a partir de la configuración y de los flags globales.
func newRootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "almacenctl",
		Usage: "Cliente de terminal de la consola de almacenes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "backend", Usage: "URL del backend (por defecto BACKEND_URL)"},
			&cli.StringFlag{Name: "profile", Usage: "perfil de sesión (por defecto CLI_PROFILE)"},
			&cli.StringFlag{Name: "session-file", Usage: "archivo de sesión (por defecto SESSION_FILE)"},
			&cli.BoolFlag{Name: "json", Usage: "salida JSON"},
			&cli.BoolFlag{Name: "verbose", Usage: "logs de depuración en stderr"},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := a.init(c); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			loginCommand(a),
			registerCommand(a),
			logoutCommand(a),
			whoamiCommand(a),
			warehousesCommand(a),
			productsCommand(a),
			stockCommand(a),
			stockReportCommand(a),
			shipmentsCommand(a),
			shipmentCommand(a),
			usersCommand(a),
		},
	}
}
