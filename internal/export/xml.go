package export

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"alecheck/internal/ale"
	"alecheck/internal/logging"
	"alecheck/internal/textutil"
)

// xmlProlog matches the declaration emitted by the legacy ingest tooling.
const xmlProlog = `<?xml version="1.0" ?>` + "\n"

var (
	errNoEpisode    = errors.New("no episode number in Name")
	errNoSourceFile = errors.New("no source file name")
	errNotClean     = errors.New("record has convention errors")
)

// Descriptor is the per-clip ingest document.
type Descriptor struct {
	XMLName           xml.Name `xml:"Clip"`
	Name              string   `xml:"NAME"`
	EpisodeNumber     string   `xml:"EP_NUM"`
	SourceFile        string   `xml:"SRC_FILENAME"`
	FileName          string   `xml:"FILE_NAME"`
	BaseFolderPath    string   `xml:"BASE_FOLDERPATH"`
	Fullpath          string   `xml:"FULLPATH"`
	StorageFolderPath string   `xml:"STORAGE_FOLDERPATH"`
	AMFFolderPath     string   `xml:"AMF_FOLDERPATH"`
	Session           string   `xml:"SESSION"`
	Duration          string   `xml:"DURATION"`
	Esta              string   `xml:"ESTA"`
	DecoratedName     string   `xml:"ESTA_DECORNAME"`
	IngestManual      string   `xml:"INGEST_MANUEL"`
	Ingestator        string   `xml:"INGESTATOR"`
}

// NewDescriptor derives the descriptor for a clean record.
func NewDescriptor(rec ale.Record, conv ale.Convention) (Descriptor, error) {
	if !rec.OK() {
		return Descriptor{}, errNotClean
	}
	ep, ok := conv.ExtractEpisodeNumber(rec.Name)
	if !ok {
		return Descriptor{}, errNoEpisode
	}
	media, err := conv.MediaPath(ep)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Name:              rec.Name,
		EpisodeNumber:     ep,
		SourceFile:        rec.SourceFile,
		FileName:          baseName(rec.SourceFile),
		BaseFolderPath:    rec.SourcePath,
		Fullpath:          rec.Fullpath,
		StorageFolderPath: conv.StoragePath(ep),
		AMFFolderPath:     media,
		Session:           rec.Session,
		Duration:          rec.Duration,
		Esta:              rec.Esta,
		DecoratedName:     rec.DecoratedName,
		IngestManual:      rec.IngestManual,
		Ingestator:        rec.Ingestator,
	}, nil
}

// Marshal renders d with a two-space indent and the legacy prolog.
func (d Descriptor) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal descriptor: %w", err)
	}
	out := make([]byte, 0, len(xmlProlog)+len(body)+1)
	out = append(out, xmlProlog...)
	out = append(out, body...)
	return append(out, '\n'), nil
}

// Skipped names a record that produced no descriptor.
type Skipped struct {
	Line       int    `json:"line"`
	Name       string `json:"name"`
	SourceFile string `json:"source_file"`
	Reason     string `json:"reason"`
}

// XMLReport lists written descriptors and skipped records.
type XMLReport struct {
	Written []string  `json:"written"`
	Skipped []Skipped `json:"skipped"`
}

// WriteXML writes one <stem>.xml per clean record. Records that cannot yield a
// descriptor are reported rather than failing the batch.
func (w *Writer) WriteXML(rows []ale.Record, conv ale.Convention) (XMLReport, error) {
	report := XMLReport{Written: []string{}, Skipped: []Skipped{}}
	if len(rows) == 0 {
		return report, ErrNoRecords
	}
	unlock, err := w.lock()
	if err != nil {
		return report, err
	}
	defer unlock()

	for _, rec := range rows {
		target, err := w.writeDescriptor(rec, conv)
		if err != nil {
			if errors.Is(err, ErrOutputUnavailable) {
				return report, err
			}
			report.Skipped = append(report.Skipped, Skipped{
				Line:       rec.Line,
				Name:       rec.Name,
				SourceFile: rec.SourceFile,
				Reason:     err.Error(),
			})
			continue
		}
		report.Written = append(report.Written, target)
	}

	if len(report.Skipped) > 0 {
		logging.WarnWithContext(w.logger, "xml descriptors skipped", "xml_records_skipped",
			logging.Int("skipped", len(report.Skipped)),
			logging.String(logging.FieldErrorHint, "review the skipped records in the report"),
			logging.String(logging.FieldImpact, "skipped clips will not be ingested"),
		)
	}
	w.logger.Info("xml descriptors written",
		logging.String("dir", w.dir),
		logging.Int("written", len(report.Written)),
	)
	return report, nil
}

func (w *Writer) writeDescriptor(rec ale.Record, conv ale.Convention) (string, error) {
	desc, err := NewDescriptor(rec, conv)
	if err != nil {
		return "", err
	}
	stem, _ := ale.SplitExt(baseName(rec.SourceFile))
	stem = textutil.SanitizeFileName(stem)
	if stem == "" {
		return "", errNoSourceFile
	}
	data, err := desc.Marshal()
	if err != nil {
		return "", err
	}
	target := filepath.Join(w.dir, stem+".xml")
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrOutputUnavailable, target, err)
	}
	return target, nil
}

// baseName strips any directory part using either separator.
func baseName(file string) string {
	if file == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(file, `\`, "/"))
}
