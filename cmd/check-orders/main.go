// Command check-orders prints the most recent orders and the notification
// settings of one store scope.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/olekukonko/tablewriter"
	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/plaquexpress/internal/db"
	"github.com/wellywell/plaquexpress/internal/types"
)

type checkConfig struct {
	DatabaseDSN string `env:"DATABASE_URI"`
	TenantID    string `env:"TENANT_ID"`
	ProjectID   string `env:"PROJECT_ID"`
	Limit       int    `env:"CHECK_LIMIT"`
}

func main() {
	var conf checkConfig
	flag.StringVar(&conf.DatabaseDSN, "d", "postgres://postgres@localhost:5432/plaquexpress?sslmode=disable", "Database DSN")
	flag.StringVar(&conf.TenantID, "t", "default", "Tenant id")
	flag.StringVar(&conf.ProjectID, "p", "plaquexpress", "Project id")
	flag.IntVar(&conf.Limit, "n", 10, "Number of orders to show")
	flag.Parse()

	if err := env.Parse(&conf); err != nil {
		logger.Fatal(err)
	}

	database, err := db.Open(conf.DatabaseDSN)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, database, types.Scope{TenantID: conf.TenantID, ProjectID: conf.ProjectID}, conf.Limit); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, database *db.Database, scope types.Scope, limit int) error {

	count, err := database.CountOrders(ctx, scope)
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("No orders found")
	} else {
		orders, err := database.ListRecentOrders(ctx, scope, limit)
		if err != nil {
			return err
		}
		fmt.Printf("Found %d orders, showing %d most recent\n\n", count, len(orders))

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "Customer", "Phone", "Plate", "Vehicle", "Type", "Total", "Status", "Created")
		for _, o := range orders {
			err := table.Append([]string{
				o.OrderNumber,
				o.CustomerName,
				o.CustomerPhone,
				o.PlateNumber,
				string(o.VehicleType),
				string(o.PlateType),
				"Rs " + strconv.Itoa(o.TotalPrice),
				string(o.Status),
				o.CreatedAt.Local().Format(time.DateTime),
			})
			if err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	settings, err := database.GetSettings(ctx, scope)
	if errors.Is(err, db.ErrSettingsNotFound) {
		fmt.Println("\nNotification settings not saved yet, all channels disabled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Channel", "Enabled", "Destination")
	for _, row := range [][]string{
		{string(types.EmailChannel), strconv.FormatBool(settings.EmailEnabled), valueOrDash(settings.EmailAddress)},
		{string(types.WhatsAppChannel), strconv.FormatBool(settings.WhatsAppEnabled), valueOrDash(settings.WhatsAppNumber)},
	} {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
