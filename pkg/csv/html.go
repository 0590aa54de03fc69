package csv

import "strings"

// ToHTMLTable renders a table as an HTML table.
//
// Each row becomes a <tr>. Fields of the first row become <th> cells when
// firstRowIsHeader is set; all other fields become <td> cells. Field text is
// written as is: escaping is the caller's responsibility.
//
// Example:
//
//	html := csv.ToHTMLTable(csv.Table{{"Name"}, {"Steve"}}, true)
//	// html is "<table><tr><th>Name</th></tr><tr><td>Steve</td></tr></table>"
func ToHTMLTable(table Table, firstRowIsHeader bool) string {
	var sb strings.Builder
	sb.WriteString("<table>")
	for i, row := range table {
		openTag, closeTag := "<td>", "</td>"
		if firstRowIsHeader && i == 0 {
			openTag, closeTag = "<th>", "</th>"
		}

		sb.WriteString("<tr>")
		for _, field := range row {
			sb.WriteString(openTag)
			sb.WriteString(field)
			sb.WriteString(closeTag)
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}
