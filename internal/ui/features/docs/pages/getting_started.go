// Package pages renders the documentation guides.
package pages

import (
	"github.com/a-h/templ"

	"github.com/leapstack-labs/hookitup/internal/ui/features/common"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
)

// GettingStartedPath is where the guide is served.
const GettingStartedPath = "/docs/getting-started"

const exampleComponent = `import { usePrevious } from '@/hooks/usePrevious';

export function MyComponent() {
  const [count, setCount] = useState(0);
  const prevCount = usePrevious(count);

  return (
    <div>
      Current: {count}, Previous: {prevCount}
    </div>
  );
}`

const typescriptExample = `// Full type inference
const [value, setValue] = useLocalStorage<string>('key', 'default');

// Generics for flexible typing
const debounced = useDebounce<SearchQuery>(query, 300);

// Automatic type inference
const prev = usePrevious(count); // Type is inferred as number`

type guideCard struct {
	title string
	body  string
}

var categoryCards = []guideCard{
	{"Animation", "Scroll animations, transitions, and motion effects for engaging UIs"},
	{"State Management", "Advanced state handling, persistence, and synchronization hooks"},
	{"Utilities", "Common patterns like debounce, throttle, and previous value tracking"},
	{"Performance", "Optimization hooks for rendering, memoization, and resource management"},
}

var practiceCards = []guideCard{
	{"Follow the Rules of Hooks", "Always call hooks at the top level of your component, never inside loops, conditions, or nested functions."},
	{"Customize for Your Needs", "These hooks are templates. Feel free to modify them to fit your specific use cases and requirements."},
	{"Test Your Hooks", "When using hooks in production, ensure they're properly tested with tools like React Testing Library."},
	{"Keep Dependencies Updated", "Some hooks may require additional libraries (like Framer Motion). Make sure to install and update them as needed."},
}

// GettingStartedPage renders the guide inside the site shell.
func GettingStartedPage(page common.PageData) templ.Component {
	return components.Layout(page, GettingStartedContent())
}

// GettingStartedContent is the guide body.
func GettingStartedContent() templ.Component {
	categories := make([]templ.Component, 0, len(categoryCards))
	for _, c := range categoryCards {
		categories = append(categories, components.Card(c.title, c.body))
	}
	practices := make([]templ.Component, 0, len(practiceCards))
	for _, c := range practiceCards {
		practices = append(practices, components.Card("✓ "+c.title, c.body))
	}

	return components.Group(
		components.SectionHeader(components.SectionHeaderProps{
			Title: "Getting Started",
			Description: "Learn how to use custom React hooks in your projects. " +
				"A comprehensive guide to understanding and implementing hooks effectively.",
			Bordered: true,
		}),

		section("What are Custom Hooks?",
			paragraph("Custom hooks are reusable functions that encapsulate stateful logic in React. "+
				"They allow you to extract component logic into reusable functions, following React's hooks rules and conventions."),
			components.Callout("Key Principle:", `Custom hooks must start with "use" and can call other hooks.`),
		),

		section("How to Use These Hooks",
			paragraph("Simply copy the hook code from any page and paste it into your project. "+
				"Each hook is self-contained and ready to use:"),
			components.Element("div", "card",
				components.Element("h3", "", components.Text("Step 1: Create a hooks folder")),
				components.CodeBlock(components.CodeBlockProps{Code: "mkdir src/hooks", Language: "bash", Title: "Terminal"}),
			),
			components.Card("Step 2: Copy the hook code",
				"Browse the hooks in the sidebar, find one you need, and copy its code into a new file."),
			components.Element("div", "card",
				components.Element("h3", "", components.Text("Step 3: Import and use")),
				components.CodeBlock(components.CodeBlockProps{Code: exampleComponent, Title: "Example Component"}),
			),
		),

		section("Hook Categories",
			paragraph("Our collection is organized into different categories to help you find what you need:"),
			components.Element("div", "card-grid", categories...),
		),

		section("TypeScript Support",
			paragraph("All hooks are written in TypeScript and provide full type safety. "+
				"You get automatic type inference and comprehensive IDE support:"),
			components.CodeBlock(components.CodeBlockProps{Code: typescriptExample, Title: "TypeScript Example"}),
		),

		components.Element("section", "bordered",
			components.SectionHeader(components.SectionHeaderProps{Title: "Best Practices"}),
			components.Group(practices...),
		),

		components.Element("section", "bordered",
			components.SectionHeader(components.SectionHeaderProps{Title: "Start Exploring"}),
			paragraph("Ready to dive in? Browse through the sidebar to discover hooks for animations, "+
				"state management, utilities, and more. Each hook includes:"),
			components.List("checklist",
				"Complete source code ready to copy",
				"Detailed usage examples",
				"Parameter descriptions and return types",
				"Common use cases and patterns",
			),
			components.Callout("Pro Tip:", "Use the search box or press Ctrl K to quickly find hooks by name or category."),
		),
	)
}

func section(title string, children ...templ.Component) templ.Component {
	body := append([]templ.Component{components.SectionHeader(components.SectionHeaderProps{Title: title})}, children...)
	return components.Element("section", "", body...)
}

func paragraph(text string) templ.Component {
	return components.Element("p", "", components.Text(text))
}
