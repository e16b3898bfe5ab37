package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmerkv/kmerkv"
	"github.com/kmerkv/kmerkv/utils"
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <input> <outdir>",
	Short: "Shard a text kmer file into per-group binary files",
	Long: `Shard a text kmer file into per-group binary files.

Each input line is a kmer followed by a decimal count. The key's highest
split-bits select the group file; the stored record keeps the in-group
remainder of the key.

Example:
  kmerkv split -k 21 -s 4 kmers.txt ./groups`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cdc, err := newCodec(cmd)
		if err != nil {
			return err
		}

		partitioner, err := kmerkv.NewPartitioner(args[1], cdc, kmerkv.WithBlockCap(blockCap(cmd)))
		if err != nil {
			return err
		}

		total, runErr := partitioner.Run(args[0])
		if err := partitioner.Close(); runErr == nil {
			runErr = err
		}
		if runErr != nil {
			return runErr
		}

		fmt.Printf("split %s records into %d groups under %s\n",
			utils.Human(total), len(partitioner.Groups()), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
