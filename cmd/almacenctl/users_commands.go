package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func usersCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Administración de usuarios (solo ADMIN)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Listar usuarios",
				Flags: pageFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					token, err := a.require(ctx, guard.RequireAdmin)
					if err != nil {
						return err
					}
					page, err := a.users.List(ctx, token, pageFrom(c))
					if err != nil {
						return a.fail(err, "no se pudieron cargar los usuarios")
					}
					if a.json {
						return printJSON(a.out, page)
					}
					rows := make([][]string, 0, len(page.Content))
					for _, u := range page.Content {
						rows = append(rows, []string{
							strconv.FormatInt(u.ID, 10), u.Username, orDash(u.Email), string(entity.ParseRole(u.Role)),
						})
					}
					printTable(a.out, []string{"ID", "USUARIO", "EMAIL", "ROL"}, rows)
					return nil
				},
			},
			{
				Name:      "role",
				Usage:     "Cambiar el rol de un usuario",
				ArgsUsage: "<id> <ADMIN|STOREKEEPER>",
				Action: func(ctx context.Context, c *cli.Command) error {
					token, err := a.require(ctx, guard.RequireAdmin)
					if err != nil {
						return err
					}
					if c.Args().Len() != 2 {
						return fmt.Errorf("uso: almacenctl users role <id> <ADMIN|STOREKEEPER>")
					}
					u, err := a.users.UpdateRole(ctx, token, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return a.fail(err, "no se pudo cambiar el rol")
					}
					if a.json {
						return printJSON(a.out, u)
					}
					_, _ = fmt.Fprintf(a.out, "%s ahora es %s\n", u.Username, entity.ParseRole(u.Role))
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Eliminar un usuario",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					token, err := a.require(ctx, guard.RequireAdmin)
					if err != nil {
						return err
					}
					if c.Args().Len() != 1 {
						return fmt.Errorf("uso: almacenctl users delete <id>")
					}
					if err := a.users.Delete(ctx, token, c.Args().First()); err != nil {
						return a.fail(err, "no se pudo eliminar el usuario")
					}
					_, _ = fmt.Fprintln(a.out, "usuario eliminado")
					return nil
				},
			},
		},
	}
}
