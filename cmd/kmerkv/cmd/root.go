package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kmerkv/kmerkv/codec"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kmerkv",
	Short: "kmerkv - constant-length kmer partitioning toolkit",
	Long: `kmerkv packs constant-length kmers into 64-bit keys, shards them
into groups by the highest key bits and streams (key, count) records
between text and binary files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntP("kmer-length", "k", 21, "bases per kmer (max 32)")
	rootCmd.PersistentFlags().IntP("split-bits", "s", 4, "high key bits forming the group id")
	rootCmd.PersistentFlags().IntP("block-cap", "b", 1024, "records per bulk IO block")
}

// newCodec builds the kmer codec from the persistent flags.
func newCodec(cmd *cobra.Command) (*codec.KmerCodec, error) {
	kmerLength, err := cmd.Flags().GetInt("kmer-length")
	if err != nil {
		return nil, err
	}
	splitBits, err := cmd.Flags().GetInt("split-bits")
	if err != nil {
		return nil, err
	}
	return codec.NewKmerCodec(kmerLength, splitBits)
}

func blockCap(cmd *cobra.Command) int {
	n, err := cmd.Flags().GetInt("block-cap")
	if err != nil {
		return 0
	}
	return n
}
