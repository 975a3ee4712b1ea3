package reservation

// TableCapacity é a lotação fixa de cada mesa física neste domínio.
const TableCapacity = 4

// RequiredTablesFor calcula quantas mesas de mesma capacidade um grupo
// ocupa (teto da divisão). Indefinido para partySize <= 0; a validação de
// positividade acontece antes, em Validate.
func RequiredTablesFor(partySize, capacity int) int {
	return (partySize + capacity - 1) / capacity
}

func RequiredTables(partySize int) int {
	return RequiredTablesFor(partySize, TableCapacity)
}
