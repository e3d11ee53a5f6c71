package library

import "time"

// Query is the full filter state of one pipeline run.
type Query struct {
	Date  DateBucket
	Media MediaFilter
	Group GroupMode
}

// DefaultQuery shows everything, one row per inspection. The zero Query
// behaves the same way.
func DefaultQuery() Query {
	return Query{Date: BucketAll, Media: MediaAll, Group: GroupByInspection}
}

// normalized fills unset fields with their defaults.
func (q Query) normalized() Query {
	d := DefaultQuery()
	if q.Date == "" {
		q.Date = d.Date
	}
	if q.Media == "" {
		q.Media = d.Media
	}
	if q.Group == "" {
		q.Group = d.Group
	}
	return q
}

// ViewKind tells the renderer which half of a ViewModel is populated.
type ViewKind int

const (
	ViewList   ViewKind = iota // Sessions holds one card per inspection
	ViewGroups                 // Groups holds date groups
)

// ViewModel is the render-ready output of one pipeline run. Exactly one of
// Sessions or Groups is populated according to Kind; the other is empty.
type ViewModel struct {
	Query    Query
	Kind     ViewKind
	Sessions []SessionCard
	Groups   []DateGroup
	Stats    Stats
}

// SessionCount returns how many sessions survived filtering.
func (vm ViewModel) SessionCount() int {
	if vm.Kind == ViewList {
		return len(vm.Sessions)
	}
	n := 0
	for _, g := range vm.Groups {
		n += len(g.Sessions)
	}
	return n
}

// Empty reports whether no capture survived filtering.
func (vm ViewModel) Empty() bool {
	return vm.Stats.Total == 0
}

// Assemble runs filter, group, aggregate and preview over sessions and
// returns a complete ViewModel. It never writes to sessions; now is the
// only notion of time used.
func Assemble(sessions []Session, q Query, now time.Time) ViewModel {
	q = q.normalized()
	filtered := Filter(sessions, q, now)

	vm := ViewModel{
		Query:    q,
		Sessions: []SessionCard{},
		Groups:   []DateGroup{},
		Stats:    Aggregate(FlattenMedia(filtered)),
	}

	switch q.Group {
	case GroupByDay:
		vm.Kind = ViewGroups
		vm.Groups = GroupByDate(filtered, now)
	default:
		vm.Kind = ViewList
		vm.Sessions = make([]SessionCard, 0, len(filtered))
		for _, s := range filtered {
			vm.Sessions = append(vm.Sessions, newCard(s))
		}
	}
	return vm
}
