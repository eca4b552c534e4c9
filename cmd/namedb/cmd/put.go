package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// nolint: gochecknoglobals
var putCmd = &cobra.Command{
	Use:   "put name[=value]...",
	Short: "Insert one or more names into the tree",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPut,
}

func init() {
	RootCmd.AddCommand(putCmd)
}

func runPut(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		name, value := splitNameValue(arg)

		key, err := makeKeyFromName(name)
		if err != nil {
			log.Warn().Err(err).Str("name", name).Msg("skipped")
			continue
		}

		previous, err := tree.Insert(key, value)
		if err != nil {
			return err
		}

		// main.c's put_key reports "existed" vs "created" by checking
		// whether the leaf already carried a value; an empty previous
		// value means this is the first insert for the key.
		if previous == "" {
			log.Info().Str("name", name).Str("value", value).Msg("created")
		} else {
			log.Info().Str("name", name).Str("previous", previous).Str("value", value).Msg("existed")
		}
	}

	return nil
}
