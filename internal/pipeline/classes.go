package pipeline

// Utility classes applied to rendered elements. They target the site
// stylesheet shipped in internal/assets.
const (
	classParagraph  = "text-gray-300"
	classHeading1   = "text-4xl md:text-5xl font-semibold tracking-tight text-white mt-10 mb-6"
	classHeading2   = "text-2xl md:text-3xl font-semibold tracking-tight text-white mt-10 mb-4"
	classHeading3   = "text-xl md:text-2xl font-semibold text-white mt-8 mb-3"
	classPermalink  = "ml-2 text-white/20 hover:text-white/60 no-underline"
	classBlockQuote = "text-gray-300"
	classListItem   = "text-gray-300"
	classBullets    = "list-disc pl-6 my-4 space-y-1"
	classNumbered   = "list-decimal pl-6 my-4 space-y-1"
	classLink       = "text-sky-400 hover:text-sky-300 underline underline-offset-2"
	classInlineCode = "rounded bg-white/10 px-1.5 py-0.5 font-mono text-sm text-gray-100"
	classFigure     = "my-6"
	classImage      = "mx-auto rounded-lg"
	classCaption    = "mt-2 text-center text-sm text-gray-400"
	classTable      = "my-6 w-full text-left text-sm text-gray-300"
	classTableCell  = "border-b border-white/10 px-3 py-2"
	classFootnote   = "footnote-ref text-xs"
	classMathInline = "math math-inline"
	classMathBlock  = "math math-display"
	classRule       = "my-8 border-white/10"

	classCodeSingle  = "my-6 rounded-xl border border-white/10 bg-white/5 shadow-inner relative"
	classCodeGroup   = "my-6 rounded-xl border border-white/10 bg-white/5 shadow-inner overflow-hidden"
	classCodeEntry   = "relative"
	classCodeDivider = "border-t border-white/10"
	classCopyButton  = "code-copy-btn absolute top-3 right-3 text-white/70 hover:text-white border border-white/20 hover:border-white/40 rounded-md p-1.5 transition-colors"
	classPre         = "overflow-x-auto p-4 text-sm leading-6"
	classCode        = "block font-mono text-gray-100"
	classShellLine   = "block before:content-['$'] before:mr-2 before:text-white/50"
	classBlankLine   = "block"
)

// copyIcon is the clipboard glyph shown inside the copy button.
const copyIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="18" height="18" viewBox="0 0 24 24"><g fill="none" stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" stroke-width="2"><path d="M9 5H7a2 2 0 0 0-2 2v12a2 2 0 0 0 2 2h10a2 2 0 0 0 2-2V7a2 2 0 0 0-2-2h-2"/><path d="M9 5a2 2 0 0 1 2-2h2a2 2 0 0 1 2 2a2 2 0 0 1-2 2h-2a2 2 0 0 1-2-2"/></g></svg>`
