package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/zerodha/logf"

	"github.com/oceanscan/gsf/pkg/gsf"
)

var (
	// Version of the build. This is injected at build-time.
	buildString = "unknown"
)

func main() {
	ko, files, err := initConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lo := initLogger(ko)
	lo.Debug("starting gsfinfo", "version", buildString)

	if len(files) == 0 {
		lo.Fatal("no input files given, see --help")
	}

	for _, path := range files {
		if err := inspect(lo, ko, path); err != nil {
			lo.Fatal("error inspecting file", "path", path, "error", err)
		}
	}
}

// inspect walks every record of one file and prints a summary line per
// record, plus decoded detail for the record types that have decoders.
func inspect(lo logf.Logger, ko *koanf.Koanf, path string) error {
	reader, err := gsf.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	fmt.Printf("%s:\n", path)

	// The first record of a well-formed file is the file header.
	buf, err := reader.NextBuffer()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("file contains no records")
		}
		return err
	}
	if buf.Type() != gsf.TypeHeader {
		return fmt.Errorf("first record is %s, want %s", buf.Type(), gsf.TypeHeader)
	}

	header, err := gsf.DecodeHeader(buf)
	if err != nil {
		return fmt.Errorf("error decoding file header: %w", err)
	}
	fmt.Printf("record_type: %d-%s size: %d\n", buf.Type(), buf.Type(), buf.Size())
	fmt.Printf("  version: %d.%d\n", header.VersionMajor, header.VersionMinor)

	count := 1
	max := ko.Int("max-records")
	for {
		if max > 0 && count >= max {
			lo.Debug("record limit reached", "max", max)
			break
		}

		buf, err := reader.NextBuffer()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		count++

		fmt.Printf("record_type: %d-%s size: %d\n", buf.Type(), buf.Type(), buf.Size())

		detail, err := describe(buf)
		if err != nil {
			if ko.Bool("skip-invalid") {
				lo.Error("error decoding record", "type", buf.Type(), "error", err)
				continue
			}
			return fmt.Errorf("error decoding %s record: %w", buf.Type(), err)
		}
		if detail != "" {
			fmt.Print(detail)
		}
	}

	lo.Debug("finished file", "path", path, "records", count)
	return nil
}

// describe decodes one record and formats its fields, one indented line per
// field. Record types without a decoder yield an empty string.
func describe(buf *gsf.RecordBuffer) (string, error) {
	var sb strings.Builder

	switch buf.Type() {
	case gsf.TypeComment:
		c, err := gsf.DecodeComment(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s\n  comment: %q\n", c.Time, c.Text)

	case gsf.TypeHistory:
		h, err := gsf.DecodeHistory(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s\n  host: %q operator: %q\n  command: %q comment: %q\n",
			h.Time, h.Host, h.Operator, h.Command, h.Comment)

	case gsf.TypeNavigationError:
		n, err := gsf.DecodeNavigationError(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s record_id: %d\n  lon_err: %gm lat_err: %gm\n",
			n.Time, n.RecordID, n.LongitudeError, n.LatitudeError)

	case gsf.TypeHVNavigationError:
		n, err := gsf.DecodeHVNavigationError(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s record_id: %d\n  h_err: %gm v_err: %gm sep: %gm pos_type: %q\n",
			n.Time, n.RecordID, n.HorizontalError, n.VerticalError, n.SEPUncertainty, n.PositionType)

	case gsf.TypeSoundVelocityProfile:
		s, err := gsf.DecodeSoundVelocityProfile(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s position: %.7f,%.7f points: %d\n",
			s.ObservationTime, s.Latitude, s.Longitude, len(s.Depths))

	case gsf.TypeAttitude:
		a, err := gsf.DecodeAttitude(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s measurements: %d\n", a.Time, len(a.Measurements))

	case gsf.TypeProcessingParameters:
		p, err := gsf.DecodeProcessingParameters(buf)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  time: %s parameters: %d\n", p.Time, len(p.Parameters))
		for _, param := range p.Parameters {
			fmt.Fprintf(&sb, "    %s\n", param)
		}
	}

	return sb.String(), nil
}
