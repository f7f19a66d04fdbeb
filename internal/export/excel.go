package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

var excelColumns = []string{"Subject", "Start Date", "Start Time", "End Date", "End Time"}

// WriteExcelXML writes the events as Excel 2003 SpreadsheetML: the minimal
// single-worksheet envelope Excel accepts, with the same rows as the CSV
// export minus the all-day column.
func WriteExcelXML(w io.Writer, events []domain.ExportEvent) error {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<?mso-application progid=\"Excel.Sheet\"?>\n")
	b.WriteString("<Workbook xmlns=\"urn:schemas-microsoft-com:office:spreadsheet\"\n")
	b.WriteString(" xmlns:o=\"urn:schemas-microsoft-com:office:office\"\n")
	b.WriteString(" xmlns:x=\"urn:schemas-microsoft-com:office:excel\"\n")
	b.WriteString(" xmlns:ss=\"urn:schemas-microsoft-com:office:spreadsheet\"\n")
	b.WriteString(" xmlns:html=\"http://www.w3.org/TR/REC-html40\">\n")
	b.WriteString(" <Worksheet ss:Name=\"Availability\">\n")
	b.WriteString("  <Table>\n")

	b.WriteString("   <Row>\n")
	for _, column := range excelColumns {
		writeCell(&b, column)
	}
	b.WriteString("   </Row>\n")

	for _, ev := range events {
		b.WriteString("   <Row>\n")
		writeCell(&b, "Available")
		writeCell(&b, exportDate(ev.Start))
		writeCell(&b, clockTime(ev.Start))
		writeCell(&b, exportDate(ev.End))
		writeCell(&b, clockTime(ev.End))
		b.WriteString("   </Row>\n")
	}

	b.WriteString("  </Table>\n")
	b.WriteString(" </Worksheet>\n")
	b.WriteString("</Workbook>")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCell(b *strings.Builder, value string) {
	fmt.Fprintf(b, "    <Cell><Data ss:Type=\"String\">%s</Data></Cell>\n", value)
}
