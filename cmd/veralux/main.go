package main

// Host-side driver for the stretch engine: loads a linear image,
// normalizes it, runs the pipeline, and writes a PNG. The engine
// itself does no file I/O; this tool owns that boundary.

import(
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"log"
	"os"

	_ "image/jpeg"

	_ "golang.org/x/image/tiff"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/skypies/util/histogram"

	"github.com/veralux/veralux/pkg/sensor"
	"github.com/veralux/veralux/pkg/vframe"
	"github.com/veralux/veralux/pkg/vstretch"
)

var(
	fOutputFilename string
	fParamsFilename string
	fMode string
	fSensor string
	fTargetBackground float64
	fLogD float64
	fAutoLogD bool
	fProtectB float64
	fColorConvergence float64
	fColorStrategy int
	fColorGrip float64
	fShadowConvergence float64
	fLinearExpansion float64
	fAdaptiveAnchor bool
	fFastBounds bool
	fVerbosity int
	fDumpLuma string
)

func init() {
	def := vstretch.NewParams()

	flag.StringVar(&fOutputFilename, "o", "out.png", "name of output image file")
	flag.StringVar(&fParamsFilename, "params", "", "YAML file of stretch parameters (flags override)")
	flag.StringVar(&fMode, "mode", string(def.Mode), "processing mode: ready-to-use or scientific")
	flag.StringVar(&fSensor, "sensor", "", "sensor profile name (default Rec.709)")
	flag.Float64Var(&fTargetBackground, "bg", def.TargetBackground, "target background level [0.05,0.50]")
	flag.Float64Var(&fLogD, "logd", def.LogD, "stretch intensity Log D [0,7]")
	flag.BoolVar(&fAutoLogD, "autologd", false, "solve Log D for the target background")
	flag.Float64Var(&fProtectB, "b", def.ProtectB, "highlight protection b [0.1,15]")
	flag.Float64Var(&fColorConvergence, "convergence", def.ColorConvergence, "star white point power [1,10]")
	flag.IntVar(&fColorStrategy, "strategy", def.ColorStrategy, "ready-to-use color strategy [-100,100]")
	flag.Float64Var(&fColorGrip, "grip", def.ColorGrip, "scientific color grip [0,1]")
	flag.Float64Var(&fShadowConvergence, "shadow", def.ShadowConvergence, "scientific shadow convergence [0,3]")
	flag.Float64Var(&fLinearExpansion, "expand", def.LinearExpansion, "scientific linear expansion [0,1]")
	flag.BoolVar(&fAdaptiveAnchor, "adaptiveanchor", def.AdaptiveAnchor, "use histogram-shape anchor detection")
	flag.BoolVar(&fFastBounds, "fastbounds", def.FastBounds, "MAD/sigma bounds instead of exact percentiles")
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fDumpLuma, "dumpluma", "", "if set, save the stretched luminance to this PNG")
	flag.Parse()
}

func main() {
	if flag.NArg() != 1 {
		log.Fatalf("usage: veralux [flags] <input image>")
	}

	params, err := loadParams()
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	profile := params.Profile()

	frame, err := loadFrame(flag.Arg(0))
	if err != nil {
		log.Fatalf("load %s: %v", flag.Arg(0), err)
	}
	log.Printf("Loaded %s: %s", flag.Arg(0), frame)

	res, err := vstretch.Run(context.Background(), frame, params, profile)
	if err != nil {
		log.Fatalf("stretch: %v", err)
	}
	log.Printf("Done: anchor=%.6f logD=%.2f starpressure=%.2f", res.Anchor, res.LogD, res.StarPressure)
	if res.Expansion.PctHigh >= 0.01 {
		log.Printf("Note: expansion clamped %.3f%% of pixels high (bounds %.4f..%.4f)",
			res.Expansion.PctHigh, res.Expansion.Low, res.Expansion.High)
	}

	if fVerbosity > 1 {
		dumpDistribution(frame, profile)
	}
	if fDumpLuma != "" {
		luma := vstretch.WeightedLuminance(frame, profile)
		if err := luma.DumpPNG(0, "stretched luminance", fDumpLuma); err != nil {
			log.Printf("dump luminance: %v", err)
		}
	}

	if err := writePNG(frame.ToRGBA64(), fOutputFilename); err != nil {
		log.Fatalf("write %s: %v", fOutputFilename, err)
	}
	log.Printf("Output written '%s'", fOutputFilename)
}

// loadParams merges the optional YAML preset with any explicitly-set
// command line flags.
func loadParams() (vstretch.Params, error) {
	params := vstretch.NewParams()

	if fParamsFilename != "" {
		contents, err := ioutil.ReadFile(fParamsFilename)
		if err != nil {
			return params, fmt.Errorf("read '%s': %v", fParamsFilename, err)
		}
		params, err = vstretch.NewParamsFromYaml(contents)
		if err != nil {
			return params, fmt.Errorf("parse '%s': %v", fParamsFilename, err)
		}
	}

	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":           params.Mode = vstretch.Mode(fMode)
		case "sensor":         params.Sensor = fSensor
		case "bg":             params.TargetBackground = fTargetBackground
		case "logd":           params.LogD = fLogD
		case "autologd":       params.AutoLogD = fAutoLogD
		case "b":              params.ProtectB = fProtectB
		case "convergence":    params.ColorConvergence = fColorConvergence
		case "strategy":       params.ColorStrategy = fColorStrategy
		case "grip":           params.ColorGrip = fColorGrip
		case "shadow":         params.ShadowConvergence = fShadowConvergence
		case "expand":         params.LinearExpansion = fLinearExpansion
		case "adaptiveanchor": params.AdaptiveAnchor = fAdaptiveAnchor
		case "fastbounds":     params.FastBounds = fFastBounds
		case "v":              params.Verbosity = fVerbosity
		}
	})

	if params.Mode != vstretch.ReadyToUse && params.Mode != vstretch.Scientific {
		return params, fmt.Errorf("no processing mode named '%s'", params.Mode)
	}

	if fVerbosity > 0 {
		log.Printf("Effective parameters:-\n\n%s\n", params.AsYaml())
	}

	return params, nil
}

// loadFrame reads an image file (TIFF/PNG/JPEG), logs any EXIF
// exposure info, and returns the normalized float frame.
func loadFrame(filename string) (*vframe.Frame, error) {
	// EXIF first; purely informational, and most FITS-derived TIFFs
	// won't have any.
	if reader, err := os.Open(filename); err == nil {
		if ex, err := exif.Decode(reader); err == nil {
			logExposure(ex)
		} else if fVerbosity > 0 {
			log.Printf("no EXIF in '%s': %v", filename, err)
		}
		reader.Close()
	}

	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, kind, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %v", filename, err)
	}
	if fVerbosity > 0 {
		log.Printf("decoded '%s' as %s", filename, kind)
	}

	return vframe.Normalize(vframe.FromImage(img))
}

func logExposure(ex *exif.Exif) {
	iso := int64(-1)
	if tag, err := ex.Get(exif.ISOSpeedRatings); err == nil {
		iso, _ = tag.Int64(0)
	}

	expNum, expDenom := int64(0), int64(1)
	if tag, err := ex.Get(exif.ExposureTime); err == nil {
		expNum, expDenom, _ = tag.Rat2(0)
	}

	log.Printf("EXIF exposure: ISO %d, %d/%ds", iso, expNum, expDenom)
}

// dumpDistribution prints a coarse histogram of the output luminance,
// to eyeball where the background and stars ended up.
func dumpDistribution(f *vframe.Frame, profile sensor.Profile) {
	luma := vstretch.WeightedLuminance(f, profile)

	h := histogram.Histogram{NumBuckets: 64, ValMin: 0, ValMax: 256}
	for i := 0; i < len(luma.Pix[0]); i += 97 {
		h.Add(histogram.ScalarVal(int(luma.Pix[0][i] * 256)))
	}

	log.Printf("Output luminance distribution: %v", h)
}

func writePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
