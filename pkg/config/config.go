// Package config provides configuration loading and validation for goalgrid.
//
// Configuration lives in a single YAML document (config.yaml by default)
// with five sections: page, fonts, colors, layout and output. All linear
// dimensions are in inches; font sizes are in points; colors are RGB
// triples in 0..255. Validation fails fast and names the offending field
// before any drawing happens.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goalgrid/goalgrid/pkg/errors"
)

// US Letter page dimensions in inches. The only supported page size.
const (
	LetterWidthIn  = 8.5
	LetterHeightIn = 11.0
)

// Config is the complete goalgrid configuration.
type Config struct {
	Page   PageConfig   `yaml:"page"`
	Fonts  FontConfig   `yaml:"fonts"`
	Colors ColorConfig  `yaml:"colors"`
	Layout LayoutConfig `yaml:"layout"`
	Output OutputConfig `yaml:"output"`
}

// PageConfig configures page size, orientation and margins.
type PageConfig struct {
	// Size is the paper size. Only "letter" is supported.
	Size string `yaml:"size"`
	// Orientation is the page orientation. Only "portrait" is supported.
	Orientation string `yaml:"orientation"`
	// Margins are the page margins in inches.
	Margins MarginConfig `yaml:"margins"`
}

// MarginConfig holds the four page margins in inches.
type MarginConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// FontConfig configures the font family and the per-element sizes in points.
// The family must be one of the PDF core families (Helvetica, Times,
// Courier); the oblique/italic variant is used for catch-up guidance text.
type FontConfig struct {
	Family           string  `yaml:"family"`
	TitleSize        float64 `yaml:"title_size"`
	GoalLineSize     float64 `yaml:"goal_line_size"`
	QuarterLabelSize float64 `yaml:"quarter_label_size"`
	MonthLabelSize   float64 `yaml:"month_label_size"`
	WeekNumberSize   float64 `yaml:"week_number_size"`
}

// RGB is a color with components in 0..255. In YAML it is written as a
// three-element sequence, e.g. [180, 180, 180].
type RGB struct {
	R, G, B int
}

// UnmarshalYAML decodes an RGB triple from a YAML sequence.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var triple []int
	if err := value.Decode(&triple); err != nil {
		return fmt.Errorf("color must be an RGB triple: %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("color must have exactly 3 components, got %d", len(triple))
	}
	c.R, c.G, c.B = triple[0], triple[1], triple[2]
	return nil
}

// MarshalYAML encodes an RGB color back to a YAML sequence.
func (c RGB) MarshalYAML() (any, error) {
	return []int{c.R, c.G, c.B}, nil
}

// ColorConfig holds the drawing colors. WeekNumber and RowStripe are
// optional; nil values are filled in by ApplyDefaults.
type ColorConfig struct {
	// GridLine is used for quarter and month grouping boxes.
	GridLine RGB `yaml:"grid_line"`
	// LightGrid is used for secondary grid elements.
	LightGrid RGB `yaml:"light_grid"`
	// Text is used for labels, writing lines and checkboxes.
	Text RGB `yaml:"text"`
	// WeekNumber is used for the weekly day-range labels.
	// Defaults to LightGrid.
	WeekNumber *RGB `yaml:"week_number,omitempty"`
	// RowStripe is the fill for alternating row stripes.
	// Defaults to a very light grey.
	RowStripe *RGB `yaml:"row_stripe,omitempty"`
}

// LayoutConfig holds the grid dimensions in inches plus drawing tweaks.
type LayoutConfig struct {
	QuarterlyColumnWidth float64 `yaml:"quarterly_column_width"`
	MonthlyColumnWidth   float64 `yaml:"monthly_column_width"`
	WeeklyColumnWidth    float64 `yaml:"weekly_column_width"`
	CheckboxSize         float64 `yaml:"checkbox_size"`
	RowHeight            float64 `yaml:"row_height"`
	// WeeklyLineWeight is the stroke width of weekly writing lines in
	// points. Zero means unset; ApplyDefaults replaces it with 0.5.
	WeeklyLineWeight float64 `yaml:"weekly_line_weight"`
	// LabelPaddingY offsets labels below the row top, in inches.
	// Zero means unset; ApplyDefaults replaces it with 0.07.
	LabelPaddingY float64 `yaml:"label_padding_y"`
	// ShowRowStripes enables alternating shading of month and week rows.
	ShowRowStripes bool `yaml:"show_row_stripes"`
}

// OutputConfig configures where the generated PDF is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Filename  string `yaml:"filename"`
}

// Default returns a Config with the stock goalgrid template settings.
// The defaults produce a grid that fits a US Letter page with room to
// spare: 7.55in of columns inside 7.9in of usable width, and 9.86in of
// header plus rows inside 10in of usable height.
func Default() *Config {
	return &Config{
		Page: PageConfig{
			Size:        "letter",
			Orientation: "portrait",
			Margins: MarginConfig{
				Top:    0.5,
				Bottom: 0.5,
				Left:   0.3,
				Right:  0.3,
			},
		},
		Fonts: FontConfig{
			Family:           "Helvetica",
			TitleSize:        14,
			GoalLineSize:     10,
			QuarterLabelSize: 12,
			MonthLabelSize:   10,
			WeekNumberSize:   8,
		},
		Colors: ColorConfig{
			GridLine:  RGB{0, 0, 0},
			LightGrid: RGB{180, 180, 180},
			Text:      RGB{0, 0, 0},
		},
		Layout: LayoutConfig{
			QuarterlyColumnWidth: 2.0,
			MonthlyColumnWidth:   1.8,
			WeeklyColumnWidth:    3.5,
			CheckboxSize:         0.25,
			RowHeight:            0.18,
			WeeklyLineWeight:     0.5,
			LabelPaddingY:        0.07,
		},
		Output: OutputConfig{
			Directory: "output",
			Filename:  "goal_tracker.pdf",
		},
	}
}

// ApplyDefaults fills in the optional fields that may be absent from a
// loaded document: the secondary colors and the drawing tweak values.
// A zero WeeklyLineWeight or LabelPaddingY is treated as unset, so an
// explicit zero in the document gets the default rather than an error.
func (c *Config) ApplyDefaults() {
	if c.Colors.WeekNumber == nil {
		lg := c.Colors.LightGrid
		c.Colors.WeekNumber = &lg
	}
	if c.Colors.RowStripe == nil {
		c.Colors.RowStripe = &RGB{230, 230, 230}
	}
	if c.Layout.WeeklyLineWeight == 0 {
		c.Layout.WeeklyLineWeight = 0.5
	}
	if c.Layout.LabelPaddingY == 0 {
		c.Layout.LabelPaddingY = 0.07
	}
}

// coreFamilies are the PDF core font families the canvas can use without
// embedding font files.
var coreFamilies = map[string]bool{
	"Helvetica": true,
	"Times":     true,
	"Courier":   true,
}

// Validate checks the configuration and returns an error naming the first
// offending field. It covers everything detectable without computing the
// full geometry; the 52-row height check lives in the layout package.
func (c *Config) Validate() error {
	if c.Page.Size != "letter" {
		return errors.New(errors.ErrCodeInvalidConfig, "page.size must be %q, got %q", "letter", c.Page.Size)
	}
	if c.Page.Orientation != "portrait" {
		return errors.New(errors.ErrCodeInvalidConfig, "page.orientation must be %q, got %q", "portrait", c.Page.Orientation)
	}

	margins := []struct {
		field string
		value float64
	}{
		{"page.margins.top", c.Page.Margins.Top},
		{"page.margins.bottom", c.Page.Margins.Bottom},
		{"page.margins.left", c.Page.Margins.Left},
		{"page.margins.right", c.Page.Margins.Right},
	}
	for _, m := range margins {
		if err := errors.ValidatePositive(m.field, m.value); err != nil {
			return err
		}
	}

	if c.Fonts.Family == "" {
		return errors.New(errors.ErrCodeMissingKey, "fonts.family is required")
	}
	if !coreFamilies[c.Fonts.Family] {
		return errors.New(errors.ErrCodeInvalidConfig, "fonts.family must be one of Helvetica, Times, Courier; got %q", c.Fonts.Family)
	}

	sizes := []struct {
		field string
		value float64
	}{
		{"fonts.title_size", c.Fonts.TitleSize},
		{"fonts.goal_line_size", c.Fonts.GoalLineSize},
		{"fonts.quarter_label_size", c.Fonts.QuarterLabelSize},
		{"fonts.month_label_size", c.Fonts.MonthLabelSize},
		{"fonts.week_number_size", c.Fonts.WeekNumberSize},
	}
	for _, s := range sizes {
		if err := errors.ValidateFontSize(s.field, s.value); err != nil {
			return err
		}
	}

	colors := []struct {
		field string
		value RGB
	}{
		{"colors.grid_line", c.Colors.GridLine},
		{"colors.light_grid", c.Colors.LightGrid},
		{"colors.text", c.Colors.Text},
	}
	if c.Colors.WeekNumber != nil {
		colors = append(colors, struct {
			field string
			value RGB
		}{"colors.week_number", *c.Colors.WeekNumber})
	}
	if c.Colors.RowStripe != nil {
		colors = append(colors, struct {
			field string
			value RGB
		}{"colors.row_stripe", *c.Colors.RowStripe})
	}
	for _, col := range colors {
		for _, comp := range []int{col.value.R, col.value.G, col.value.B} {
			if err := errors.ValidateColorComponent(col.field, comp); err != nil {
				return err
			}
		}
	}

	dims := []struct {
		field string
		value float64
	}{
		{"layout.quarterly_column_width", c.Layout.QuarterlyColumnWidth},
		{"layout.monthly_column_width", c.Layout.MonthlyColumnWidth},
		{"layout.weekly_column_width", c.Layout.WeeklyColumnWidth},
		{"layout.checkbox_size", c.Layout.CheckboxSize},
		{"layout.row_height", c.Layout.RowHeight},
		{"layout.weekly_line_weight", c.Layout.WeeklyLineWeight},
		{"layout.label_padding_y", c.Layout.LabelPaddingY},
	}
	for _, d := range dims {
		if err := errors.ValidatePositive(d.field, d.value); err != nil {
			return err
		}
	}

	gridWidth := c.Layout.QuarterlyColumnWidth + c.Layout.MonthlyColumnWidth +
		c.Layout.WeeklyColumnWidth + c.Layout.CheckboxSize
	if total := c.Page.Margins.Left + c.Page.Margins.Right + gridWidth; total > LetterWidthIn {
		return errors.New(errors.ErrCodeInvalidConfig,
			"margins plus column widths exceed page width: %.2fin > %.2fin", total, LetterWidthIn)
	}

	if err := errors.ValidateOutputDirectory(c.Output.Directory); err != nil {
		return err
	}
	if err := errors.ValidateOutputFilename(c.Output.Filename); err != nil {
		return err
	}

	return nil
}
