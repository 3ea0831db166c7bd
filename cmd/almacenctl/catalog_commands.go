package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/guard"
)

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Value: 0},
		&cli.IntFlag{Name: "size", Value: 100},
	}
}

func pageFrom(c *cli.Command) dto.PageRequest {
	return dto.PageRequest{Page: int(c.Int("page")), Size: int(c.Int("size"))}
}

func warehousesCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "warehouses",
		Usage: "Listar bodegas",
		Flags: pageFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := a.require(ctx, guard.RequireAuthenticated)
			if err != nil {
				return err
			}
			page, err := a.warehouses.List(ctx, token, pageFrom(c))
			if err != nil {
				return a.fail(err, "no se pudieron cargar las bodegas")
			}
			if a.json {
				return printJSON(a.out, page)
			}
			rows := make([][]string, 0, len(page.Content))
			for _, w := range page.Content {
				rows = append(rows, []string{strconv.FormatInt(w.ID, 10), w.Name, orDash(w.Location)})
			}
			printTable(a.out, []string{"ID", "NOMBRE", "UBICACIÓN"}, rows)
			return nil
		},
	}
}

func productsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Listar productos",
		Flags: pageFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := a.require(ctx, guard.RequireAuthenticated)
			if err != nil {
				return err
			}
			page, err := a.products.List(ctx, token, pageFrom(c))
			if err != nil {
				return a.fail(err, "no se pudieron cargar los productos")
			}
			if a.json {
				return printJSON(a.out, page)
			}
			rows := make([][]string, 0, len(page.Content))
			for _, p := range page.Content {
				rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name, orDash(p.Unit)})
			}
			printTable(a.out, []string{"ID", "NOMBRE", "UNIDAD"}, rows)
			return nil
		},
	}
}

func stockFilterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "product", Usage: "filtro por nombre de producto"},
		&cli.StringFlag{Name: "warehouse", Usage: "filtro por ID de bodega"},
	}
}

func stockFilterFrom(c *cli.Command) dto.StockFilter {
	return dto.StockFilter{ProductName: c.String("product"), WarehouseID: c.String("warehouse")}
}

func stockCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stock",
		Usage: "Listar existencias",
		Flags: append(stockFilterFlags(), pageFlags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := a.require(ctx, guard.RequireAuthenticated)
			if err != nil {
				return err
			}
			f := stockFilterFrom(c)
			f.PageRequest = pageFrom(c)
			page, err := a.stock.List(ctx, token, f)
			if err != nil {
				return a.fail(err, "no se pudieron cargar las existencias")
			}
			if a.json {
				return printJSON(a.out, page)
			}
			rows := make([][]string, 0, len(page.Content))
			for _, s := range page.Content {
				warehouse, product := "-", "-"
				if s.Warehouse != nil {
					warehouse = s.Warehouse.Name
				}
				if s.Product != nil {
					product = s.Product.Name
				}
				rows = append(rows, []string{warehouse, product, formatCount(s.Count), orDash(s.LastUpdate)})
			}
			printTable(a.out, []string{"BODEGA", "PRODUCTO", "CANTIDAD", "ACTUALIZADO"}, rows)
			return nil
		},
	}
}

func stockReportCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stock-report",
		Usage: "Exportar las existencias a PDF",
		Flags: append(stockFilterFlags(), &cli.StringFlag{Name: "out", Value: "existencias.pdf"}),
		Action: func(ctx context.Context, c *cli.Command) error {
			token, err := a.require(ctx, guard.RequireAuthenticated)
			if err != nil {
				return err
			}
			user := ""
			if s := a.store.Current(ctx); s != nil {
				user = s.Claims.Subject
			}
			pdf, err := a.stock.Report(ctx, token, user, stockFilterFrom(c))
			if err != nil {
				return a.fail(err, "no se pudo generar el informe")
			}
			if err := os.WriteFile(c.String("out"), pdf, 0o644); err != nil {
				return fmt.Errorf("guardar informe: %w", err)
			}
			_, _ = fmt.Fprintf(a.out, "informe guardado en %s\n", c.String("out"))
			return nil
		},
	}
}
