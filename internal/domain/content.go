package domain

// NewNoteContent is the body given to every freshly created note
const NewNoteContent = "# New note\n\nStart writing here..."

// WelcomeContent seeds the first note of an empty notebook
const WelcomeContent = `# Welcome to the Markdown editor!

## Supported Features

### Text Formatting
- **Bold text**
- *Italic*
- ~~Strikethrough~~
- ` + "`inline code`" + `

### Lists
1. Numbered list
2. Second item
   - Nested list
   - Another nested item

### Links and Images
[Example link](https://example.com)

### Tables
| Header 1   | Header 2   |
|------------|------------|
| Cell 1     | Cell 2     |
| Cell 3     | Cell 4     |

### Quotes
> This is a quote.
> It can span multiple lines.

### Horizontal Rule
---
`
