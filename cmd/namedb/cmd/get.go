package cmd

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/k0ekk0ek/namedb"
)

// nolint: gochecknoglobals
var getCmd = &cobra.Command{
	Use:   "get name...",
	Short: "Look up one or more names in the tree",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGet,
}

func init() {
	RootCmd.AddCommand(getCmd)
}

func runGet(_ *cobra.Command, args []string) error {
	for _, name := range args {
		key, err := makeKeyFromName(name)
		if err != nil {
			log.Warn().Err(err).Str("name", name).Msg("skipped")
			continue
		}

		value, err := tree.Get(key)
		if errors.Is(err, namedb.ErrNotFound) {
			log.Info().Str("name", name).Msg("not found")
			continue
		}
		if err != nil {
			return err
		}

		log.Info().Str("name", name).Str("value", value).Msg("found")
	}

	return nil
}
