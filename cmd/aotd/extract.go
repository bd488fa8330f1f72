package main

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/albumoftheday/aotd/engine"
	"github.com/albumoftheday/aotd/engine/layout"
	"github.com/albumoftheday/aotd/pkg/parse"
	"github.com/albumoftheday/aotd/pkg/utils"
)

var extractCmd = &cobra.Command{
	Use:   "extract <photo>...",
	Short: "Crop album-of-the-day photos into their named regions for OCR",
	Long: `Crops each photo into title.png, genres.png, comments.png and cover.png,
stored under a directory named after the photo.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	geometry, err := loadGeometry()
	if err != nil {
		return err
	}
	out, err := openSink(ctx)
	if err != nil {
		return err
	}
	defer out.close()

	for _, photoPath := range args {
		log := logrus.WithField("photo", photoPath)
		photo, err := decodeImageFile(photoPath)
		if err != nil {
			return err
		}
		parts, err := engine.ExtractRegions(photo, geometry)
		if err != nil {
			return err
		}

		encoded, err := engine.EncodePNG(ordered(parts))
		if err != nil {
			return err
		}
		directory := parse.SafeFilename(strings.TrimSuffix(filepath.Base(photoPath), filepath.Ext(photoPath)))
		for i, region := range layout.Regions {
			if err := out.save(ctx, directory+"/"+region.String()+".png", encoded[i]); err != nil {
				return err
			}
		}
		log.Info("Extracted image parts")
	}
	return nil
}

func ordered(parts map[layout.Region]*image.RGBA) []*image.RGBA {
	return utils.Map(layout.Regions, func(region layout.Region) *image.RGBA {
		return parts[region]
	})
}
