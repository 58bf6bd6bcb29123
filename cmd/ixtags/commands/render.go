package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ixtags/pkg/params"
	"github.com/goliatone/go-ixtags/pkg/tags"
)

type renderDef struct {
	use   string
	short string
	op    func(*tags.Tags) func(params.Params) (string, error)
}

var renderDefs = []renderDef{
	{use: "url", short: "Print the CDN URL for an image", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.ImageURL }},
	{use: "srcset", short: "Print the density srcset for an image", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.Srcset }},
	{use: "img", short: "Render an <img> tag", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.ImageTag }},
	{use: "responsive", short: "Render an <img> tag with a density srcset", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.ResponsiveImageTag }},
	{use: "picture", short: "Render a <picture> tag", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.PictureTag }},
	{use: "lazy", short: "Render a lazy-loading <img> tag", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.LazyloadTag }},
	{use: "responsive-picture", short: "Render a <picture> with breakpoint sources from sizes=", op: func(t *tags.Tags) func(params.Params) (string, error) { return t.ResponsivePictureTag }},
}

func renderCmd(opts *options, def renderDef) *cobra.Command {
	return &cobra.Command{
		Use:   def.use + " PATH [key=value...]",
		Short: def.short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.ParsePairs(args[1:])
			if err != nil {
				return err
			}
			p["path"] = args[0]

			t, err := opts.buildTags(cmd)
			if err != nil {
				return err
			}
			out, err := def.op(t)(p)
			if err != nil {
				return err
			}
			if out == "" {
				return errors.New("nothing rendered: path is empty")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
