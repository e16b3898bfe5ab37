package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kmerkv/kmerkv"
	"github.com/kmerkv/kmerkv/model"
	"github.com/kmerkv/kmerkv/utils"
)

// statCmd represents the stat command
var statCmd = &cobra.Command{
	Use:   "stat <file>",
	Short: "Report record count and size of a binary kmer file",
	Long: `Report how many records a binary kmer file holds and its byte size.

With --head N the first N records are printed as kmer text and count.

Example:
  kmerkv stat -k 21 --head 5 counts.kmr`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := kmerkv.NewBinaryKmerReader(args[0], kmerkv.WithBlockCap(blockCap(cmd)))
		if err != nil {
			return err
		}
		defer reader.Close()

		count := reader.Count()
		fmt.Printf("%s: %s records, %s bytes\n",
			args[0], utils.Human(count), utils.Human(count*model.RecordSize))

		head, err := cmd.Flags().GetInt("head")
		if err != nil || head <= 0 {
			return err
		}
		cdc, err := newCodec(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < head; i++ {
			record, err := reader.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s %d\n", cdc.EncodeKey(record.Key), record.Value)
		}
		return nil
	},
}

func init() {
	statCmd.Flags().Int("head", 0, "print the first N records as text")
	rootCmd.AddCommand(statCmd)
}
