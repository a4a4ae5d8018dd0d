package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcooky/go-din"
	"github.com/openstay/stayagent/config"
	"github.com/openstay/stayagent/engine"
	"github.com/openstay/stayagent/errors"
	"github.com/openstay/stayagent/internal/mylog"
	"github.com/openstay/stayagent/listing"
	"github.com/openstay/stayagent/tool"
	"github.com/spf13/cobra"
)

const defaultQuery = "Find me a place to stay in New York from December 20th to December 23rd for 2 adults"

func newCmd() *cobra.Command {
	params := &struct {
		Model        string
		MaxToolCalls int
		ServersFile  string
		ExtractOnly  bool
		ShowListings bool
	}{}

	cmd := &cobra.Command{
		Use:   "stayagent [query]",
		Short: "Answer travel queries with live accommodation search",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			query := defaultQuery
			if len(args) > 0 {
				query = args[0]
			}

			c := din.NewContainer(ctx, din.EnvProd)

			logger := din.MustGet[*mylog.Logger](c, mylog.Key)
			anthropicConf := din.MustGetT[*config.AnthropicConfig](c)
			engineConf := din.MustGetT[*config.EngineConfig](c)

			if anthropicConf.APIKey == "" {
				return errors.Wrapf(errors.ErrInvalidConfig, "ANTHROPIC_API_KEY is not set")
			}
			if params.Model != "" {
				anthropicConf.Model = params.Model
			}
			if params.MaxToolCalls > 0 {
				engineConf.MaxToolCalls = params.MaxToolCalls
			}

			servers := config.DefaultServers()
			if params.ServersFile != "" {
				var err error
				if servers, err = config.LoadServersFromFile(params.ServersFile); err != nil {
					return err
				}
			}

			eng := din.MustGetT[*engine.Engine](c)

			if params.ExtractOnly {
				extracted, err := eng.ExtractSearchParams(c, query)
				if err != nil {
					return err
				}
				fmt.Printf("location: %s\ncheckin:  %s\ncheckout: %s\nadults:   %d\n",
					extracted.Location, extracted.CheckIn, extracted.CheckOut, extracted.Adults)
				return nil
			}

			toolManager := din.MustGetT[tool.Manager](c)
			defer toolManager.Close()

			for name, server := range servers {
				if err := toolManager.RegisterServer(c, tool.RegisterServerRequest{
					ServerName: name,
					Config: tool.MCPServerConfig{
						Transport: tool.MCPTransportType(server.Transport),
						Command:   server.Command,
						Args:      server.Args,
						Env:       server.Env,
						URL:       server.URL,
						Headers:   server.Headers,
					},
				}); err != nil {
					return err
				}
				logger.Info("tool server registered", "name", name)
			}

			resp, err := eng.Run(c, engine.RunRequest{Query: query})
			if err != nil {
				return err
			}

			fmt.Println(resp.Text)

			if params.ShowListings {
				for _, call := range resp.ToolCalls {
					if call.Name != "airbnb_search" || call.IsError {
						continue
					}
					listings, err := listing.ParseSearchResults(call.Result)
					if err != nil {
						logger.Warn("failed to parse search results", "err", err)
						continue
					}
					fmt.Printf("\n--- Search results ---\n%s\n", listing.Format(listings))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Model, "model", "m", "", "Model name to use")
	cmd.Flags().IntVar(&params.MaxToolCalls, "max-tool-calls", 0, "Maximum number of tool call rounds")
	cmd.Flags().StringVarP(&params.ServersFile, "servers", "s", "", "YAML file describing tool servers")
	cmd.Flags().BoolVar(&params.ExtractOnly, "extract-only", false, "Only extract search parameters from the query")
	cmd.Flags().BoolVar(&params.ShowListings, "show-listings", false, "Print parsed search results after the answer")

	return cmd
}
