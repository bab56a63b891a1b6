package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/peetj/lcd-character-creator/internal/preview"
)

var (
	pngOut   string
	pngScale int
)

var pngCmd = &cobra.Command{
	Use:   "png",
	Short: "Render the working character as a PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := preview.RenderPNG(st.Current().Rows, pngScale)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pngOut, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngOut)
		return nil
	},
}

var fromImageCmd = &cobra.Command{
	Use:   "from-image <file>",
	Short: "Derive the working character from an image",
	Long: `Scale an image onto the 5x8 grid and threshold it by luminance.
Dark areas become lit pixels.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("Couldn't decode image:\n%w", err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		c := st.Current()
		c.Rows = preview.FromImage(img)
		return st.SetCurrent(c)
	},
}

func init() {
	rootCmd.AddCommand(pngCmd)
	rootCmd.AddCommand(fromImageCmd)
	pngCmd.Flags().StringVarP(&pngOut, "out", "o", "character.png", "Output file")
	pngCmd.Flags().IntVar(&pngScale, "scale", 16, "Pixels per cell")
}
