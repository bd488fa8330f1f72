package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ridge/must/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/albumoftheday/aotd/engine"
	"github.com/albumoftheday/aotd/engine/font"
	"github.com/albumoftheday/aotd/pkg/env"
	"github.com/albumoftheday/aotd/pkg/parse"
)

var renderFlags struct {
	template     string
	cover        string
	font         string
	color        string
	artists      []string
	album        string
	genres       []string
	comments     string
	commentsFile string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an album-of-the-day image, one file per comment page",
	Example: `  aotd render --template template.png --font ArchivoBlack-Regular.ttf \
    --cover cover.jpg --artist Gidge --album "Autumn Bells" \
    --genre microhouse --genre "ambient techno" --comments "Lovely."`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVar(&renderFlags.template, "template", "", "Template image, exactly the canvas size (env AOTD_TEMPLATE_PATH)")
	flags.StringVar(&renderFlags.cover, "cover", "", "Square album cover image")
	flags.StringVar(&renderFlags.font, "font", "", "TrueType font file (env AOTD_FONT_PATH)")
	flags.StringVar(&renderFlags.color, "color", "", "Text colour as hex (env AOTD_TEXT_COLOR, default #000000)")
	flags.StringArrayVar(&renderFlags.artists, "artist", nil, "Artist name, repeat for several artists")
	flags.StringVar(&renderFlags.album, "album", "", "Album title")
	flags.StringArrayVar(&renderFlags.genres, "genre", nil, "Genre name, repeat for several genres")
	flags.StringVar(&renderFlags.comments, "comments", "", "Comment text")
	flags.StringVar(&renderFlags.commentsFile, "comments-file", "", "File holding the comment text")

	must.OK(renderCmd.MarkFlagRequired("cover"))
	must.OK(renderCmd.MarkFlagRequired("artist"))
	must.OK(renderCmd.MarkFlagRequired("album"))
	renderCmd.MarkFlagsMutuallyExclusive("comments", "comments-file")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	geometry, err := loadGeometry()
	if err != nil {
		return err
	}
	textFont, err := font.Load(flagOrEnv(renderFlags.font, "AOTD_FONT_PATH", ""))
	if err != nil {
		return err
	}
	textColor, err := colorful.Hex(flagOrEnv(renderFlags.color, "AOTD_TEXT_COLOR", "#000000"))
	if err != nil {
		return fmt.Errorf("invalid text colour: %w", err)
	}
	templatePath := flagOrEnv(renderFlags.template, "AOTD_TEMPLATE_PATH", "")
	if templatePath == "" {
		return errors.New("a template image is required (--template or AOTD_TEMPLATE_PATH)")
	}
	template, err := decodeImageFile(templatePath)
	if err != nil {
		return err
	}
	cover, err := decodeImageFile(renderFlags.cover)
	if err != nil {
		return err
	}
	comments := renderFlags.comments
	if renderFlags.commentsFile != "" {
		data, err := os.ReadFile(renderFlags.commentsFile)
		if err != nil {
			return fmt.Errorf("failed to read comments: %w", err)
		}
		comments = string(data)
	}

	pages, err := engine.New(textFont, geometry, textColor).Render(template, engine.Request{
		Artists:  renderFlags.artists,
		Album:    renderFlags.album,
		Genres:   renderFlags.genres,
		Comments: comments,
		Cover:    cover,
	})
	if errors.Is(err, engine.ErrRequiresManualLayout) {
		logrus.WithError(err).Warn("The image must be handled manually")
		return err
	}
	if err != nil {
		return err
	}

	encoded, err := engine.EncodePNG(pages)
	if err != nil {
		return err
	}

	out, err := openSink(ctx)
	if err != nil {
		return err
	}
	defer out.close()

	baseName := parse.SafeFilename(fmt.Sprintf("%s-%s", renderFlags.artists[0], renderFlags.album))
	for i, data := range encoded {
		if err := out.save(ctx, fmt.Sprintf("%s-%d.png", baseName, i+1), data); err != nil {
			return err
		}
	}
	logrus.WithField("pages", len(encoded)).Info("Rendered album of the day")
	return nil
}

func flagOrEnv(flag string, name string, defaultValue string) string {
	if flag != "" {
		return flag
	}
	return env.StringVariable(name, defaultValue)
}
