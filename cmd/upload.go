// ABOUTME: Upload command for product and banner images
// ABOUTME: Streams a local file as multipart to the admin API

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image",
	Long:  `Upload a local image file to the store's media storage and print its URL.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithExit(func(ctx context.Context) int {
			return runUpload(ctx, os.Stdout, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(ctx context.Context, w io.Writer, path string) int {
	api, mgr := newSession()
	if code := requireAdmin(ctx, w, mgr); code != 0 {
		return code
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	defer f.Close()

	uploaded, err := api.UploadImage(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Uploaded %s (%d bytes)\n", uploaded.OriginalName, uploaded.Size)
	fmt.Fprintln(w, uploaded.URL)
	return 0
}
