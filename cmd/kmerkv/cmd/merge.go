package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmerkv/kmerkv"
	"github.com/kmerkv/kmerkv/utils"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <groupdir> <output>",
	Short: "Merge group files into one sorted, counted binary file",
	Long: `Merge the group files produced by split into a single binary file.

Duplicate keys inside a group are summed, group ids restore the high key
bits, and the output is sorted by full key.

Example:
  kmerkv merge -k 21 -s 4 ./groups counts.kmr`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cdc, err := newCodec(cmd)
		if err != nil {
			return err
		}

		merger := kmerkv.NewMerger(cdc, kmerkv.WithBlockCap(blockCap(cmd)))
		total, err := merger.MergeDir(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("merged %s distinct kmers into %s\n", utils.Human(total), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
