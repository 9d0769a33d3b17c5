package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/docs"
	"github.com/etnz/networth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his net worth: what his assets and
			liabilities are worth, how they moved over time, and how far he is from his goal.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume that you know about his financial items, check the book
			first to understand what they are. You only ever suggest changes, the user
			applies them himself with the nwt commands.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the grounding expert. It has no access to the book.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a personal finance advisor,
		well aware of savings products, pensions, mortgages and property markets,
		and of the latest rates and news. Ask the Advisor whenever you need
		recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance, you can search and find about anything
			related to savings accounts, pensions, mortgage rates, property prices etc.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the
			user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the user's book.
func NewBookkeeper() *Expert {

	lib := []Function{Overview, ItemList, SuggestCategory}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's net worth book.
		He can compute the relevant figures about the user's wealth: totals, history,
		category breakdowns and goal progress.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's net worth book.
				You know how to use the Tools to extract relevant information about the
				user's financial items and wealth.
				You are part of a team of experts, yours is everything about the user's book.
				They might ask you questions about it, pardon their approximative language
				and figure out what they meant.

				You never modify the book. When asked about categorising a new item,
				use the suggestion tool and report the suggestion only.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// BookFile is the book the public functions read. The CLI overrides it with
// its own -file flag before starting the agent.
var BookFile = "networth.json"

// DecodeBook decodes the book from the agent's book file.
// If the file does not exist, it returns a new empty book.
func DecodeBook() (*networth.Book, error) {
	f, err := os.Open(BookFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return networth.NewBook(""), nil
		}
		return nil, fmt.Errorf("could not open book file %q: %w", BookFile, err)
	}
	defer f.Close()

	book, err := networth.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", BookFile, err)
	}
	return book, nil
}

var Overview = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Overview",
		Description: `Overview computes the user's net worth summary on the given day:
		total assets, total liabilities, net worth, liquidity split and top categories.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": {
					Type: genai.TypeString,
					Description: `The snapshot date to summarise. The latest snapshot is the default.
					Otherwise it uses a flexible date format based on YYYY-MM-DD:

					` + must(docs.GetTopic("dates")),
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted net worth summary for the requested date.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		book, err := DecodeBook()
		if err != nil {
			return errResponse(id, "Overview", err)
		}

		on, err := parseDate(book, args)
		if err != nil {
			return errResponse(id, "Overview", err)
		}

		s := book.Summary(on)
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Overview",
			Response: map[string]any{
				"output": renderer.SummaryMarkdown(&s),
			},
		}
	},
}

var ItemList = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Items",
		Description: `Items lists all financial items in the user's book, with their
		identifier, name, category, type (asset or liability), liquidity and target.
		`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all financial items in the book.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		book, err := DecodeBook()
		if err != nil {
			return errResponse(id, "Items", err)
		}

		return &genai.FunctionResponse{
			ID:   id,
			Name: "Items",
			Response: map[string]any{
				"output": renderer.ItemsMarkdown(book),
			},
		}
	},
}

var SuggestCategory = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "SuggestCategory",
		Description: `SuggestCategory suggests a category for a new financial item
		by matching its name against the category keywords in the user's book.
		It is a suggestion only, the book is never modified.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the financial item to categorise, e.g. 'Barclays Cash ISA'.",
				},
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The suggested category name, or a message when no keyword matches.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {

		name, ok := args["name"].(string)
		if !ok {
			return errResponse(id, "SuggestCategory", fmt.Errorf("argument 'name' is not a string as expected but %T", args["name"]))
		}

		book, err := DecodeBook()
		if err != nil {
			return errResponse(id, "SuggestCategory", err)
		}

		catID, ok := book.GuessCategory(name)
		if !ok {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "SuggestCategory",
				Response: map[string]any{
					"output": fmt.Sprintf("no category keyword matches %q", name),
				},
			}
		}

		c := book.Category(catID)
		return &genai.FunctionResponse{
			ID:   id,
			Name: "SuggestCategory",
			Response: map[string]any{
				"output": fmt.Sprintf("suggested category: %s (%s)", c.Name, c.ID),
			},
		}
	},
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func parseDate(book *networth.Book, args map[string]any) (networth.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		if on := book.NewestSnapshotDate(); !on.IsZero() {
			return on, nil
		}
		return networth.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return networth.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := networth.ParseDate(sdate)
	if err != nil {
		return networth.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
