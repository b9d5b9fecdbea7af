package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/reportes-api/internal/application/dto"
)

// XML serializa el reporte como documento XML indentado:
//
//	<report title="...">
//	  <columns><column fieldname label fieldtype/>...</columns>
//	  <rows><row is_total="true"?><field name>valor</field>...</row>...</rows>
func XML(report *dto.ReportDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("title", report.Title)

	cols := root.CreateElement("columns")
	for _, c := range report.Columns {
		col := cols.CreateElement("column")
		col.CreateAttr("fieldname", c.Fieldname)
		col.CreateAttr("label", c.Label)
		col.CreateAttr("fieldtype", c.Fieldtype)
	}

	rows := root.CreateElement("rows")
	for _, r := range report.Rows {
		row := rows.CreateElement("row")
		if flag, ok := r[dto.RowKeyIsTotal].(bool); ok && flag {
			row.CreateAttr(dto.RowKeyIsTotal, "true")
		}
		if flag, ok := r[dto.RowKeyIsSubtotal].(bool); ok && flag {
			row.CreateAttr(dto.RowKeyIsSubtotal, "true")
		}
		for _, c := range report.Columns {
			field := row.CreateElement("field")
			field.CreateAttr("name", c.Fieldname)
			field.SetText(cellString(r[c.Fieldname]))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export xml: %w", err)
	}
	return out, nil
}
