// Command fakeserver runs the in-memory storefront backend for local use of
// the cli.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/fakebackend"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

type options struct {
	addr          string
	logLevel      string
	logBackend    string
	adminEmail    string
	adminPassword string
	seed          bool
}

func parseFlags(args []string) options {
	var o options
	fs := flag.NewFlagSet("fakeserver", flag.ExitOnError)
	fs.StringVar(&o.addr, "a", ":8080", "listen address")
	fs.StringVar(&o.logLevel, "l", "info", "log level")
	fs.StringVar(&o.logBackend, "b", "slog", "log backend (slog or zap)")
	fs.StringVar(&o.adminEmail, "admin-email", "admin@example.com", "admin account email")
	fs.StringVar(&o.adminPassword, "admin-password", "admin", "admin account password")
	fs.BoolVar(&o.seed, "seed", true, "seed sample arts")
	_ = fs.Parse(args)
	return o
}

var sampleArts = []models.Art{
	{Title: "Harbour at Dawn", Description: "M. Laine", Category: "Painting", Price: 120,
		PictureURL1: "/uploads/harbour-1.jpg", PictureURL2: "/uploads/harbour-2.jpg"},
	{Title: "Quiet Field", Description: "A. Ortiz", Category: "Painting", Price: 45},
	{Title: "Bronze Heron", Description: "K. Sato", Category: "Sculpture", Price: 300,
		PictureURL1: "/uploads/heron.jpg"},
	{Title: "City Lines", Description: "R. Novak", Category: "Drawing", Price: 25},
}

func main() {
	o := parseFlags(os.Args[1:])

	logger, err := logging.New(o.logBackend, o.logLevel, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	st := fakebackend.NewStore()
	st.SeedAdmin("Admin", o.adminEmail, o.adminPassword)
	if o.seed {
		for _, a := range sampleArts {
			st.SeedArt(a)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	if err := fakebackend.New(st, logger).Run(ctx, o.addr); err != nil {
		logger.Error(ctx, "fake backend failed", "error", err.Error())
		os.Exit(1)
	}
}
