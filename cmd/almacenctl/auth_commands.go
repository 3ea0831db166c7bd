package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func loginCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Iniciar sesión y guardar el token en el perfil",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Sources: cli.EnvVars("ALMACEN_PASSWORD")},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := a.auth.Login(ctx, a.store, dto.LoginRequest{
				Username: c.String("username"),
				Password: c.String("password"),
			})
			if err != nil {
				return a.fail(err, "credenciales inválidas")
			}
			return a.printSession(sess)
		},
	}
}

func registerCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Registrar un almacenero nuevo e iniciar sesión",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, Sources: cli.EnvVars("ALMACEN_PASSWORD")},
			&cli.StringFlag{Name: "confirm-password", Usage: "por defecto igual a --password"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			confirm := c.String("confirm-password")
			if !c.IsSet("confirm-password") {
				confirm = c.String("password")
			}
			sess, err := a.auth.Register(ctx, a.store, dto.RegisterRequest{
				Username:        c.String("username"),
				Email:           c.String("email"),
				Password:        c.String("password"),
				ConfirmPassword: confirm,
			})
			if err != nil {
				return a.fail(err, "no se pudo completar el registro")
			}
			return a.printSession(sess)
		},
	}
}

func logoutCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Borrar la sesión del perfil",
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := a.auth.Logout(ctx, a.store); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(a.out, "sesión cerrada")
			return nil
		},
	}
}

func whoamiCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Mostrar la sesión actual",
		Action: func(ctx context.Context, _ *cli.Command) error {
			sess := a.store.Current(ctx)
			if sess == nil {
				return errLoginRequired
			}
			return a.printSession(sess)
		},
	}
}

func (a *app) printSession(sess *entity.Session) error {
	if a.json {
		return printJSON(a.out, sess.Claims)
	}
	rows := [][2]string{
		{"usuario", sess.Claims.Subject},
		{"rol", orDash(string(sess.Claims.Role()))},
	}
	if sess.Claims.ExpiresAt != nil {
		rows = append(rows, [2]string{"expira", sess.Claims.ExpiresAt.Local().Format("2006-01-02 15:04")})
	}
	printKV(a.out, rows)
	return nil
}
