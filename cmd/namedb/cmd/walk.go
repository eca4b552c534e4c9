package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/k0ekk0ek/namedb"
)

// nolint: gochecknoglobals
var (
	backwards bool
	zone      string

	walkCmd = &cobra.Command{
		Use:   "walk",
		Short: "Print every stored name in canonical DNS order",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}
)

func init() {
	walkCmd.Flags().BoolVar(&backwards, "backwards", false, "walk in descending canonical order")
	walkCmd.Flags().StringVar(&zone, "zone", "", "restrict the walk to names under this zone")
	RootCmd.AddCommand(walkCmd)
}

func runWalk(_ *cobra.Command, _ []string) error {
	print := func(key namedb.Key, value string) error {
		log.Info().Str("key", key.String()).Str("value", value).Msg("entry")
		return nil
	}

	if zone != "" {
		zoneKey, err := makeKeyFromName(zone)
		if err != nil {
			return err
		}
		return tree.WalkPrefix(zoneKey[:len(zoneKey)-1], print)
	}

	if backwards {
		return tree.WalkBackwards(print)
	}
	return tree.Walk(print)
}
