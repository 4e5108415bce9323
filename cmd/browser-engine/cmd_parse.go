package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Scharxi/browser-engine/dom"
	"github.com/Scharxi/browser-engine/dom/html"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("browser-engine")

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a markup document and dump the resulting tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read document: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			start := time.Now()
			root, err := html.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse document: %w", err)
			}
			log.Infof("parsed %d bytes in %s", len(data), time.Since(start))

			switch outputFormat {
			case "tree":
				fmt.Print(dom.PrettyPrint(root))
			case "html":
				fmt.Println(dom.Render(root))
			case "json":
				out, err := json.MarshalIndent(root, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println(string(out))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "Output format (tree, html, json)")

	return cmd
}
