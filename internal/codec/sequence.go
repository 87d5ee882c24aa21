package codec

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/kinetic-notation/backend/internal/models"
)

// Metadata keys lifted into SequenceMetadata. Everything else is kept
// verbatim in Extra so encode reproduces the original head element.
const (
	metaWord   = "word"
	metaAuthor = "author"
	metaLevel  = "level"
)

// DecodeSequence reads a legacy sequence file: a JSON array whose first
// element is sequence-level metadata, optionally followed by a beat-0
// start position and then ordinary beats in file order. Beats keep
// their file order; the codec never reorders. Recoverable problems are
// returned as ConversionIssues alongside the converted sequence.
func DecodeSequence(r io.Reader) (*models.SequenceFile, []models.ConversionIssue, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, errors.Wrap(err, "decoding legacy sequence")
	}
	if len(raw) == 0 {
		return nil, nil, errors.Wrap(ErrInvalidInput, "sequence file has no metadata element")
	}

	seq := &models.SequenceFile{
		Metadata: decodeMetadata(raw[0]),
		Beats:    make([]*models.BeatData, 0, len(raw)-1),
	}

	var issues []models.ConversionIssue
	ordinal := 0
	for _, dict := range raw[1:] {
		if isStartPositionDict(dict) {
			start, startIssues, err := LegacyStartPositionToBeat(dict)
			if err != nil {
				return nil, issues, err
			}
			if seq.StartPosition != nil {
				issues = append(issues, models.ConversionIssue{
					Beat: 0, Reason: "duplicate start position entry; keeping the first",
				})
				continue
			}
			seq.StartPosition = start
			issues = append(issues, startIssues...)
			continue
		}

		ordinal++
		if n, ok := asNumber(dict[keyBeat]); ok && int(n) != ordinal {
			issues = append(issues, models.ConversionIssue{
				Beat: ordinal, Field: keyBeat,
				Reason: "beat number disagrees with file order; file order wins",
			})
		}

		beat, beatIssues, err := LegacyToBeat(dict, ordinal)
		if err != nil {
			return nil, issues, errors.Wrapf(err, "beat %d", ordinal)
		}
		seq.Beats = append(seq.Beats, beat)
		issues = append(issues, beatIssues...)
	}

	return seq, issues, nil
}

// EncodeSequence writes a sequence back out in the legacy flat format.
func EncodeSequence(seq *models.SequenceFile, w io.Writer) error {
	if seq == nil {
		return errors.Wrap(ErrInvalidInput, "no sequence to encode")
	}

	out := make([]map[string]any, 0, len(seq.Beats)+2)
	out = append(out, encodeMetadata(seq.Metadata))

	if seq.StartPosition != nil {
		dict, err := StartPositionToLegacy(seq.StartPosition)
		if err != nil {
			return err
		}
		out = append(out, dict)
	}

	for i, beat := range seq.Beats {
		dict, err := BeatToLegacy(beat, i+1)
		if err != nil {
			return errors.Wrapf(err, "beat %d", i+1)
		}
		out = append(out, dict)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// isStartPositionDict distinguishes the beat-zero variant: it carries
// sequence_start_position, or an explicit beat number of 0.
func isStartPositionDict(dict map[string]any) bool {
	if _, ok := dictString(dict, keySeqStartPos); ok {
		return true
	}
	n, ok := asNumber(dict[keyBeat])
	return ok && n == 0
}

func decodeMetadata(dict map[string]any) models.SequenceMetadata {
	meta := models.SequenceMetadata{Extra: make(map[string]any)}
	for key, value := range dict {
		switch key {
		case metaWord:
			meta.Word, _ = value.(string)
		case metaAuthor:
			meta.Author, _ = value.(string)
		case metaLevel:
			if n, ok := asNumber(value); ok {
				meta.Level = int(n)
			}
		default:
			meta.Extra[key] = value
		}
	}
	return meta
}

func encodeMetadata(meta models.SequenceMetadata) map[string]any {
	dict := make(map[string]any, len(meta.Extra)+3)
	for key, value := range meta.Extra {
		dict[key] = value
	}
	if meta.Word != "" {
		dict[metaWord] = meta.Word
	}
	if meta.Author != "" {
		dict[metaAuthor] = meta.Author
	}
	if meta.Level != 0 {
		dict[metaLevel] = meta.Level
	}
	return dict
}
