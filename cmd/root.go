package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sendseven/internal/config"
	"sendseven/internal/credentials"
	"sendseven/internal/node"
	"sendseven/internal/node/resources"
	"sendseven/internal/sendseven"
)

var (
	credentialsFile string
	baseURL         string
	outputFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "sendseven",
	Short: "SendSeven connector — messaging actions and a webhook trigger for workflow hosts",
	Long:  "A workflow-host connector for the SendSeven messaging API: contacts, conversations, messages, WhatsApp templates and a webhook-driven trigger.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials-file", "", "path to YAML credentials file (default: environment variables)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "SendSeven API base URL override")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table or json")
}

func Execute() error {
	return rootCmd.Execute()
}

// newClient builds the API client from flags, the environment and the
// optional credentials file.
func newClient() (*sendseven.Client, error) {
	cfg := config.LoadConfig()

	var creds *credentials.Set
	var err error

	file := credentialsFile
	if file == "" {
		file = cfg.CredentialsFile
	}
	if file != "" {
		creds, err = credentials.Load(file)
		if err != nil {
			return nil, err
		}
	} else {
		creds = credentials.FromEnv()
	}

	url := baseURL
	if url == "" {
		url = cfg.BaseURL
	}

	return sendseven.NewClient(url, creds), nil
}

func defaultRegistry() (*node.Registry, error) {
	client, err := newClient()
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}
	return resources.DefaultRegistry(client), nil
}
