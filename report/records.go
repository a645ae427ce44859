package report

// Record is one revision-table row. Every field except Revision may be
// empty.
type Record struct {
	Revision string
	Date     string
	Status   string
	Comment  string
	Author   string
	Checker  string
}

// BuildRecords zips the positional parallel lists into explicit records:
// record i draws from index i of each list, defaulting to the empty
// string when that list is shorter than the revision list.
func BuildRecords(revisions, dates, statuses, comments, authors, checkers []string) []Record {
	at := func(list []string, i int) string {
		if i < len(list) {
			return list[i]
		}
		return ""
	}

	records := make([]Record, len(revisions))
	for i, rev := range revisions {
		records[i] = Record{
			Revision: rev,
			Date:     at(dates, i),
			Status:   at(statuses, i),
			Comment:  at(comments, i),
			Author:   at(authors, i),
			Checker:  at(checkers, i),
		}
	}
	return records
}
