package event

import (
	"fmt"
	"strconv"
)

// BlockKind identifies the element opened by a Start event.
type BlockKind int

// Block kinds. BlockOther covers containers the renderer has no dedicated
// markup for; their children are rendered in place.
const (
	BlockOther BlockKind = iota
	BlockParagraph
	BlockHeading
	BlockBlockQuote
	BlockCodeBlock
	BlockList
	BlockListItem
	BlockEmphasis
	BlockStrong
	BlockStrikethrough
	BlockLink
	BlockImage
	BlockTable
	BlockTableHead
	BlockTableRow
	BlockTableCell
)

var blockNames = [...]string{
	BlockOther:         "Other",
	BlockParagraph:     "Paragraph",
	BlockHeading:       "Heading",
	BlockBlockQuote:    "BlockQuote",
	BlockCodeBlock:     "CodeBlock",
	BlockList:          "List",
	BlockListItem:      "ListItem",
	BlockEmphasis:      "Emphasis",
	BlockStrong:        "Strong",
	BlockStrikethrough: "Strikethrough",
	BlockLink:          "Link",
	BlockImage:         "Image",
	BlockTable:         "Table",
	BlockTableHead:     "TableHead",
	BlockTableRow:      "TableRow",
	BlockTableCell:     "TableCell",
}

func (k BlockKind) String() string {
	if k >= 0 && int(k) < len(blockNames) {
		return blockNames[k]
	}
	return "BlockKind(" + strconv.Itoa(int(k)) + ")"
}

// Block describes an element opened by a Start event.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1 and up).
	Level int

	// Info is the fenced code block info string. HasInfo distinguishes an
	// empty info string from an indented block that has none.
	Info    string
	HasInfo bool

	// Start is the first item number of an ordered list; nil for bullet lists.
	Start *uint64

	// Dest and Title belong to links and images.
	Dest  string
	Title string
}

// Paragraph returns a paragraph block.
func Paragraph() Block { return Block{Kind: BlockParagraph} }

// Heading returns a heading block of the given level.
func Heading(level int) Block { return Block{Kind: BlockHeading, Level: level} }

// BlockQuote returns a block quote block.
func BlockQuote() Block { return Block{Kind: BlockBlockQuote} }

// CodeBlock returns a fenced code block with an info string.
func CodeBlock(info string) Block { return Block{Kind: BlockCodeBlock, Info: info, HasInfo: true} }

// IndentedCodeBlock returns a code block without an info string.
func IndentedCodeBlock() Block { return Block{Kind: BlockCodeBlock} }

// OrderedList returns an ordered list starting at start.
func OrderedList(start uint64) Block { return Block{Kind: BlockList, Start: &start} }

// BulletList returns an unordered list.
func BulletList() Block { return Block{Kind: BlockList} }

// ListItem returns a list item.
func ListItem() Block { return Block{Kind: BlockListItem} }

// Emphasis returns an emphasis span.
func Emphasis() Block { return Block{Kind: BlockEmphasis} }

// Strong returns a strong span.
func Strong() Block { return Block{Kind: BlockStrong} }

// Strikethrough returns a strikethrough span.
func Strikethrough() Block { return Block{Kind: BlockStrikethrough} }

// Link returns a link to dest.
func Link(dest, title string) Block { return Block{Kind: BlockLink, Dest: dest, Title: title} }

// Image returns an image referencing dest. Text events inside it form the alt text.
func Image(dest, title string) Block { return Block{Kind: BlockImage, Dest: dest, Title: title} }

// Table returns a table.
func Table() Block { return Block{Kind: BlockTable} }

// TableHead returns a table header section.
func TableHead() Block { return Block{Kind: BlockTableHead} }

// TableRow returns a table row.
func TableRow() Block { return Block{Kind: BlockTableRow} }

// TableCell returns a table cell.
func TableCell() Block { return Block{Kind: BlockTableCell} }

// Other returns a generic container.
func Other() Block { return Block{Kind: BlockOther} }

func (b Block) String() string {
	switch b.Kind {
	case BlockHeading:
		return fmt.Sprintf("Heading(%d)", b.Level)
	case BlockCodeBlock:
		if !b.HasInfo {
			return "CodeBlock"
		}
		return fmt.Sprintf("CodeBlock(%q)", b.Info)
	case BlockList:
		if b.Start == nil {
			return "List"
		}
		return fmt.Sprintf("List(%d)", *b.Start)
	case BlockLink, BlockImage:
		return fmt.Sprintf("%s(%q, %q)", b.Kind, b.Dest, b.Title)
	default:
		return b.Kind.String()
	}
}
