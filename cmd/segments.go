package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"scriptsync/internal/alignment"
	"scriptsync/internal/render"
	"scriptsync/internal/segment"

	"github.com/spf13/cobra"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments <alignment-file>",
	Short: "Compose an alignment into segments and print them",
	Args:  cobra.ExactArgs(1),
	RunE:  runSegments,
}

var (
	segmentsHideTags bool
	segmentsJSON     bool
)

func init() {
	segmentsCmd.Flags().BoolVar(&segmentsHideTags, "hide-audio-tags", true, "suppress bracketed audio tags like [laughs]")
	segmentsCmd.Flags().BoolVar(&segmentsJSON, "json", false, "emit segments and words as JSON")

	rootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read alignment file: %w", err)
	}

	a, err := alignment.Decode(data)
	if err != nil {
		return err
	}

	segments, words := segment.Compose(a, segment.Options{HideAudioTags: segmentsHideTags})

	if segmentsJSON {
		out, err := json.MarshalIndent(struct {
			Segments []segment.Segment `json:"segments"`
			Words    []segment.Word    `json:"words"`
		}{segments, words}, "", "    ")
		if err != nil {
			return fmt.Errorf("encode segments: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%4s  %-4s  %-12s  %-12s  %s\n", "#", "KIND", "START", "END", "TEXT")
	for _, seg := range segments {
		start, end := "", ""
		if seg.Kind == segment.KindWord {
			start = render.FormatTime(seg.Start)
			end = render.FormatTime(seg.End)
		}
		fmt.Printf("%4d  %-4s  %-12s  %-12s  %q\n", seg.Index, seg.Kind, start, end, seg.Text)
	}
	fmt.Printf("\n%d segments, %d words\n", len(segments), len(words))
	return nil
}
