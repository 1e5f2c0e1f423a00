package stego

import "fmt"

// groups is the synonym table. Each group holds exactly four synonyms and
// their order is the wire format: index 0..3 encodes the 2-bit values
// 00, 01, 10 and 11. Reordering or resizing a group breaks decoding of
// every previously produced stego text.
var groups = [][4]string{
	{"good", "great", "excellent", "fine"},
	{"bad", "poor", "terrible", "awful"},
	{"big", "large", "huge", "giant"},
	{"small", "tiny", "little", "mini"},
	{"fast", "quick", "rapid", "swift"},
	{"easy", "simple", "basic", "plain"},
	{"hard", "difficult", "tough", "complex"},
	{"new", "recent", "fresh", "modern"},
	{"old", "ancient", "aged", "dated"},
	{"start", "begin", "launch", "initiate"},
	{"end", "finish", "complete", "conclude"},
	{"make", "create", "build", "produce"},
	{"find", "discover", "locate", "detect"},
	{"think", "ponder", "consider", "reflect"},
	{"know", "understand", "grasp", "comprehend"},
	{"want", "desire", "wish", "need"},
	{"help", "assist", "aid", "support"},
	{"work", "function", "operate", "perform"},
	{"use", "employ", "utilize", "apply"},
	{"give", "provide", "offer", "supply"},
}

// DefaultCoverText is used when the caller supplies no cover text, or a
// cover text with no substitutable words. It is hand-written to contain
// many group members.
const DefaultCoverText = `Good new methods make work easy and fast for all people to use every day.
Big ideas help us find better ways to think about hard problems we face.
Small teams can start to build great tools that give users what they want.
It is important to know the old rules before you begin any difficult task.
We should help each other and make things simple when work becomes complex.
Modern systems need to function well and operate without any major issues.
When you discover new concepts you must understand them before moving ahead.
Smart developers create software to provide solutions and offer real value.
The end goal is to produce results that users desire and truly appreciate.`

// slot locates a synonym within the table.
type slot struct {
	group int
	index int
}

// synonymIndex maps every lower-cased synonym to its group and position.
// Read-only after init.
var synonymIndex = buildIndex()

func buildIndex() map[string]slot {
	idx := make(map[string]slot, len(groups)*4)
	for g, syns := range groups {
		for i, s := range syns {
			if _, dup := idx[s]; dup {
				// A word in two groups would make decoding ambiguous.
				panic(fmt.Sprintf("stego: synonym %q appears in more than one group", s))
			}
			idx[s] = slot{group: g, index: i}
		}
	}
	return idx
}
