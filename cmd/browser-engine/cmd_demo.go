package main

import (
	"fmt"

	"github.com/Scharxi/browser-engine/dom"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Pretty-print a hand-built sample tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := dom.NewElement("body", nil, []dom.Node{
				dom.NewElement("div", nil, []dom.Node{
					dom.NewText("Some text content"),
					dom.NewComment("A comment"),
				}),
				dom.NewElement("p", dom.AttrMap{
					"id":    "main",
					"class": "container",
				}, nil),
			})

			fmt.Print(dom.PrettyPrint(root))
			return nil
		},
	}
}
