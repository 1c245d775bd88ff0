package cmd

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"sendseven/internal/config"
	"sendseven/internal/server"
	"sendseven/internal/statedata"
	"sendseven/internal/trigger"
)

var (
	servePort    int
	serveFlow    string
	serveEvent   string
	callbackBase string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Receive webhook deliveries and stream trigger events",
	Args:  cobra.NoArgs,
	RunE:  serveTrigger,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveFlow, "workflow", "default", "workflow identifier for this trigger")
	serveCmd.Flags().StringVar(&serveEvent, "event", "message.created", "event to subscribe to")
	serveCmd.Flags().StringVar(&callbackBase, "callback-base", "", "public base URL SendSeven should deliver to (skips remote registration when empty)")
	rootCmd.AddCommand(serveCmd)
}

func serveTrigger(cmd *cobra.Command, args []string) error {
	if !slices.Contains(trigger.KnownEvents, serveEvent) {
		return fmt.Errorf("unknown event %q (known: %s)", serveEvent, strings.Join(trigger.KnownEvents, ", "))
	}

	cfg := config.LoadConfig()
	client, err := newClient()
	if err != nil {
		return err
	}

	store, err := statedata.Open(cfg.StatePath)
	if err != nil {
		return err
	}
	lifecycle := trigger.NewLifecycle(client, store)

	base := callbackBase
	if base == "" {
		base = cfg.CallbackBaseURL
	}
	if base != "" {
		ctx := context.Background()
		exists, err := lifecycle.CheckExists(ctx, serveFlow)
		if err != nil {
			return err
		}
		if !exists {
			callbackURL := strings.TrimRight(base, "/") + "/hook/" + serveFlow
			if err := lifecycle.Create(ctx, serveFlow, callbackURL, serveEvent); err != nil {
				return err
			}
			log.Printf("registered webhook for workflow %s at %s", serveFlow, callbackURL)
		}
	} else {
		log.Println("no callback base configured, skipping remote webhook registration")
	}

	secret, err := lifecycle.Secret(serveFlow)
	if err != nil {
		return err
	}

	hub := server.NewHub()
	go hub.Run()

	srv := server.NewWebhookServer(hub)
	srv.Subscribe(server.Subscription{
		WorkflowID: serveFlow,
		Event:      serveEvent,
		Secret:     secret,
	})

	addr := fmt.Sprintf(":%d", servePort)
	log.Printf("listening on %s (workflow %s, event %s)", addr, serveFlow, serveEvent)
	return srv.ListenAndServe(addr)
}
