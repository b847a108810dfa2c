package utils

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// FFmpegProber reads media metadata with ffprobe and grabs cover frames with ffmpeg.
type FFmpegProber struct{}

// ProbeDuration returns the container duration of the file in seconds.
func (FFmpegProber) ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe video")
	}
	return ParseProbeDuration(out)
}

// ExtractThumbnail writes the first frame of videoPath as a jpeg into outputDir.
func (FFmpegProber) ExtractThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "Failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "Failed to generate the thumbnail")
	}
	return outputPath, nil
}

// ParseProbeDuration extracts format.duration from ffprobe json output.
func ParseProbeDuration(probe string) (float64, error) {
	raw := gjson.Get(probe, "format.duration")
	if !raw.Exists() {
		return 0, errors.New("probe output has no format.duration")
	}
	d, err := strconv.ParseFloat(raw.String(), 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse duration")
	}
	if d <= 0 {
		return 0, errors.New("probe reported non positive duration")
	}
	return d, nil
}
