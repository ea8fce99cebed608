package segment

import "regexp"

// SMILESRegex is the ordered-alternative pattern for atomic SMILES tokens.
// Alternative order matters: the reaction marker and bracket groups must win
// over their constituent characters, and two-letter elements over one-letter.
const SMILESRegex = `(>>|\[[^\[\]]{1,10}\]|Br|Cl|Si|Se|Na|Ca|Li|Mg|Zn|Cu|Fe|Mn|Hg|Ag|Au|[B-IK-Zb-ik-z0-9=#$%@+\-()/\\.])`

var (
	smilesPattern        = regexp.MustCompile(SMILESRegex)
	reactionClassPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)
)

// IsReactionClass reports whether text is a reaction class label like 2.12.13:
// one or more digit groups separated by single dots.
func IsReactionClass(text string) bool {
	return reactionClassPattern.MatchString(text)
}

// SplitSMILES scans text left to right and returns its atomic SMILES tokens.
// Characters matching no alternative (a bare '>', the letters J/j) are
// skipped, not reported; noisy input shrinks rather than errors.
func SplitSMILES(text string) []string {
	return smilesPattern.FindAllString(text, -1)
}
