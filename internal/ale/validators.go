package ale

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	filenameSpecialChars = regexp.MustCompile(`[^a-zA-Z0-9=_\-\s]`)
	pathSpecialChars     = regexp.MustCompile(`[^a-zA-Z0-9=_\-\s/:\\]`)
	nameInvalidChars     = regexp.MustCompile(`[^a-zA-Z0-9\-]`)
	sessionPattern       = regexp.MustCompile(`^[0-9]{6}_EQ[1-4]_(?:AM|PM)$`)
)

// audioNameMarker flags clip names that announce an audio clip.
const audioNameMarker = "Odio"

// Rule is one named convention check. Check returns a violation message and
// true when the record breaks the rule.
type Rule struct {
	Name string
	// NameConvention rules are skipped when a decorated-name override is present.
	NameConvention bool
	Check          func(Record, Convention) (string, bool)
}

// Rules is the ordered registry applied to every record. Order determines the
// order of messages in the combined error string.
var Rules = []Rule{
	{Name: "missing-fields", Check: checkMissingFields},
	{Name: "filename-special-chars", Check: checkFilenameChars},
	{Name: "path-special-chars", Check: checkPathChars},
	{Name: "audio-naming", Check: checkAudioNaming},
	{Name: "name-invalid-chars", NameConvention: true, Check: checkNameChars},
	{Name: "episode-number", NameConvention: true, Check: checkEpisodeNumber},
	{Name: "episode-sequence", NameConvention: true, Check: checkEpisodeSequence},
	{Name: "session-naming", Check: checkSession},
}

// ApplicableRules filters the registry for a record. A decorated-name override
// exempts the raw name from the name convention rules.
func ApplicableRules(rules []Rule, overridden bool) []Rule {
	if !overridden {
		return rules
	}
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.NameConvention {
			continue
		}
		out = append(out, rule)
	}
	return out
}

// Validate runs rules against rec and returns the violation messages in rule
// order.
func Validate(rec Record, conv Convention, rules []Rule) []string {
	var messages []string
	for _, rule := range rules {
		if msg, violated := rule.Check(rec, conv); violated {
			messages = append(messages, msg)
		}
	}
	return messages
}

// HasSpecialCharsInFilename reports characters outside [A-Za-z0-9=_-\s] in the
// filename stem. The extension is exempt.
func HasSpecialCharsInFilename(filename string) bool {
	stem, _ := SplitExt(filename)
	return filenameSpecialChars.MatchString(stem)
}

// HasSpecialCharsInPath reports characters outside [A-Za-z0-9=_-\s/:\\].
func HasSpecialCharsInPath(path string) bool {
	return pathSpecialChars.MatchString(path)
}

// HasInvalidCharsInName reports characters outside [A-Za-z0-9-] in a clip name.
func HasInvalidCharsInName(name string) bool {
	return nameInvalidChars.MatchString(name)
}

// SessionValid reports whether session matches ######_EQ[1-4]_(AM|PM).
func SessionValid(session string) bool {
	return sessionPattern.MatchString(session)
}

// IsWav reports a .wav source file, case-insensitively.
func IsWav(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".wav")
}

// LooksLikeMisnamedAudio flags clips named as audio whose file is not a wav.
func LooksLikeMisnamedAudio(name, filename string) bool {
	return strings.Contains(name, audioNameMarker) && !IsWav(filename)
}

// SequenceWellFormed reports whether the episode tag is present and followed
// by SequenceDigits ASCII digits.
func (c Convention) SequenceWellFormed(name string) bool {
	tag := c.Tag()
	pos := strings.Index(name, tag)
	if pos < 0 {
		return false
	}
	start := pos + len(tag)
	end := min(start+c.SequenceDigits, len(name))
	seq := name[start:end]
	if seq == "" {
		return false
	}
	for i := 0; i < len(seq); i++ {
		if seq[i] < '0' || seq[i] > '9' {
			return false
		}
	}
	return true
}

// MissingFields lists the essential fields that are empty on rec.
func MissingFields(rec Record) []string {
	values := map[string]string{
		ColName:       rec.Name,
		ColSourceFile: rec.SourceFile,
		ColSourcePath: rec.SourcePath,
		ColSession:    rec.Session,
		ColDuration:   rec.Duration,
	}
	var missing []string
	for _, col := range EssentialColumns {
		if values[col] == "" {
			missing = append(missing, col)
		}
	}
	return missing
}

// SplitExt splits a file name into stem and extension. Leading dots belong to
// the stem, so ".hidden" has no extension.
func SplitExt(filename string) (string, string) {
	sep := strings.LastIndexAny(filename, `/\`)
	dot := strings.LastIndexByte(filename, '.')
	if dot <= sep {
		return filename, ""
	}
	base := filename[sep+1 : dot]
	if strings.Trim(base, ".") == "" {
		return filename, ""
	}
	return filename[:dot], filename[dot:]
}

func checkMissingFields(rec Record, _ Convention) (string, bool) {
	missing := MissingFields(rec)
	if len(missing) == 0 {
		return "", false
	}
	return fmt.Sprintf("Données manquantes (%s) à la ligne %d.", strings.Join(missing, ", "), rec.Line), true
}

func checkFilenameChars(rec Record, _ Convention) (string, bool) {
	return "Caractères spéciaux dans le nom du fichier.", HasSpecialCharsInFilename(rec.SourceFile)
}

func checkPathChars(rec Record, _ Convention) (string, bool) {
	return "Caractères spéciaux dans le chemin du fichier.", HasSpecialCharsInPath(rec.SourcePath)
}

func checkAudioNaming(rec Record, _ Convention) (string, bool) {
	return "Verifier le nommage car cela semble ne pas etre un son", LooksLikeMisnamedAudio(rec.Name, rec.SourceFile)
}

func checkNameChars(rec Record, _ Convention) (string, bool) {
	return "Caractère invalide dans la colonne 'Name'.", HasInvalidCharsInName(rec.Name)
}

func checkEpisodeNumber(rec Record, conv Convention) (string, bool) {
	_, ok := conv.ExtractEpisodeNumber(rec.Name)
	return "Numéro d'épisode invalide dans 'Name'.", !ok
}

func checkEpisodeSequence(rec Record, conv Convention) (string, bool) {
	return "Vérifiez le nommage EPISODE SEQUENCE", !conv.SequenceWellFormed(rec.Name)
}

func checkSession(rec Record, _ Convention) (string, bool) {
	return fmt.Sprintf("La session semble mal nommée (%s)", rec.Session), !SessionValid(rec.Session)
}
