package viewmodel

import "fmt"

var testColumns = []Column{
	{Key: "id", Title: "ID"},
	{Key: "status", Title: "Status"},
	{Key: "type", Title: "Tipo"},
	{Key: "ref", Title: "Referência"},
	{Key: "eta", Title: "ETA/ETD"},
}

// row builds a row whose cells mirror its fields.
func row(id, status, typ, ref, eta string) Row {
	return Row{
		ID:     id,
		Cells:  []string{id, status, typ, ref, eta},
		Type:   typ,
		Status: status,
	}
}

// reportRows returns 23 rows: 10 Pendente, 8 Aprovado, 5 Rejeitado,
// interleaved so every status appears on several pages.
func reportRows() []Row {
	var rows []Row
	counts := map[string]int{"Pendente": 10, "Aprovado": 8, "Rejeitado": 5}
	order := []string{"Pendente", "Aprovado", "Rejeitado"}
	for i := 0; len(rows) < 23; i++ {
		s := order[i%len(order)]
		if counts[s] == 0 {
			continue
		}
		counts[s]--
		typ := "importacao"
		if len(rows)%4 == 3 {
			typ = "exportacao"
		}
		if len(rows)%7 == 6 {
			typ = ""
		}
		n := len(rows) + 1
		rows = append(rows, row(
			fmt.Sprintf("2024%04d", n),
			s,
			typ,
			fmt.Sprintf("REF-%02d/Navio %c", n, 'A'+rune(n%5)),
			fmt.Sprintf("%02d/%02d/2024", n, (n%12)+1),
		))
	}
	return rows
}

func reportTable() *Table {
	return &Table{Title: "Processos", Columns: testColumns, Rows: reportRows()}
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
