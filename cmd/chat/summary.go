package main

import (
	"chat-observer/chat"
	"chat-observer/contract"
	"chat-observer/domain"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// printSummary renders one line per room of the directory.
func printSummary(out io.Writer, directory *chat.Directory[domain.Message]) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Room", "Users", "Messages", "Last message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, name := range directory.Names() {
		room, ok := directory.Lookup(name)
		if !ok {
			continue
		}
		users := lo.Map(room.ChatRoomUsers(), func(id contract.Identity, _ int) string {
			return id.DisplayName()
		})
		last := ""
		if value, ok := room.Value(); ok {
			last = value.Author + ": " + value.Content
		}
		table.Append([]string{
			name,
			strings.Join(users, ", "),
			strconv.Itoa(len(room.MessageHistory())),
			last,
		})
	}
	table.Render()
}
