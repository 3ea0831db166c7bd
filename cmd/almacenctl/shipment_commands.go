package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

func shipmentsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "shipments",
		Usage: "Listar operaciones registradas",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "incoming | write-off | outgoing | transfer"},
			&cli.StringFlag{Name: "warehouse"},
			&cli.StringFlag{Name: "from", Usage: "AAAA-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "AAAA-MM-DD"},
		}, pageFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := a.require(ctx, guard.RequireAuthenticated)
			if err != nil {
				return err
			}
			page, err := a.shipments.List(ctx, token, dto.ShipmentFilter{
				PageRequest:     pageFrom(c),
				TransactionType: c.String("type"),
				WarehouseID:     c.String("warehouse"),
				FromDate:        c.String("from"),
				ToDate:          c.String("to"),
			})
			if err != nil {
				return a.fail(err, "no se pudieron cargar las operaciones")
			}
			if a.json {
				return printJSON(a.out, page)
			}
			rows := make([][]string, 0, len(page.Content))
			for _, s := range page.Content {
				warehouse, user := "-", "-"
				if s.Warehouse != nil {
					warehouse = s.Warehouse.Name
				}
				if s.User != nil {
					user = s.User.Username
				}
				total := 0
				for _, it := range s.Items {
					total += it.Count
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10), s.TransactionType, orDash(s.Date), warehouse, user,
					strconv.Itoa(len(s.Items)), formatCount(total),
				})
			}
			printTable(a.out, []string{"ID", "TIPO", "FECHA", "BODEGA", "USUARIO", "LÍNEAS", "UNIDADES"}, rows)
			return nil
		},
	}
}

func shipmentCommand(a *app) *cli.Command {
	sub := func(kind entity.MovementKind, usage string) *cli.Command {
		flags := []cli.Flag{
			&cli.StringFlag{Name: "warehouse", Aliases: []string{"w"}, Required: true, Usage: "bodega (origen en traslados)"},
			&cli.StringSliceFlag{Name: "item", Aliases: []string{"i"}, Required: true, Usage: "PRODUCTO:CANTIDAD, repetible"},
		}
		if kind == entity.MovementTransfer {
			flags = append(flags, &cli.StringFlag{Name: "to", Required: true, Usage: "bodega destino"})
		}
		return &cli.Command{
			Name:  string(kind),
			Usage: usage,
			Flags: flags,
			Action: func(ctx context.Context, c *cli.Command) error {
				token, err := a.require(ctx, guard.RequireAuthenticated)
				if err != nil {
					return err
				}
				draft, err := composeDraft(a.client, kind, c.String("warehouse"), c.String("to"), c.StringSlice("item"))
				if err != nil {
					return err
				}
				shipment, err := draft.Submit(ctx, token)
				if err != nil {
					return a.fail(err, movement.FailureFallback)
				}
				if a.json {
					return printJSON(a.out, shipment)
				}
				_, _ = fmt.Fprintf(a.out, "movimiento %s registrado (id %d)\n", kind, shipment.ID)
				return nil
			},
		}
	}
	return &cli.Command{
		Name:  "shipment",
		Usage: "Registrar un movimiento de varias líneas",
		Commands: []*cli.Command{
			sub(entity.MovementIncoming, "Entrada de mercancía"),
			sub(entity.MovementWriteOff, "Baja de mercancía"),
			sub(entity.MovementTransfer, "Traslado entre bodegas"),
		},
	}
}

// composeDraft arma el borrador con las líneas PRODUCTO:CANTIDAD; la primera línea inválida aborta.
func composeDraft(gateway ports.ShipmentGateway, kind entity.MovementKind, warehouse, to string, items []string) (*movement.Composer, error) {
	draft := movement.NewComposer(gateway, kind)
	if err := draft.SetWarehouse(warehouse); err != nil {
		return nil, err
	}
	if kind == entity.MovementTransfer {
		if err := draft.SetDestination(to); err != nil {
			return nil, err
		}
	}
	for _, raw := range items {
		product, qty, err := parseItem(raw)
		if err != nil {
			return nil, err
		}
		if err := draft.AddLine(product, qty).Err(); err != nil {
			return nil, fmt.Errorf("línea %q: %s", raw, domain.UserMessage(err, err.Error()))
		}
	}
	if !draft.CanSubmit() {
		if kind == entity.MovementTransfer && strings.TrimSpace(warehouse) == strings.TrimSpace(to) {
			return nil, fmt.Errorf("la bodega destino debe ser distinta de la de origen")
		}
		return nil, domain.ErrDraftIncomplete
	}
	return draft, nil
}

// parseItem interpreta "PRODUCTO:CANTIDAD".
func parseItem(raw string) (string, int, error) {
	product, qty, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return "", 0, fmt.Errorf("línea %q: use PRODUCTO:CANTIDAD", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return "", 0, fmt.Errorf("línea %q: cantidad no numérica", raw)
	}
	return strings.TrimSpace(product), n, nil
}
