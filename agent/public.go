package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/divitrek/divitrek"
	"github.com/divitrek/divitrek/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
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

			The user is here primarily to understand the dividend income of the assets in his ledger:
			what he holds, what each asset paid, how often it pays, and what it is expected to pay next.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his asset tickers, checked the ledger first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert dividend analyst,
		very well aware of listed companies and funds, their dividend policies,
		announcements, cuts and special distributions.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in dividend investing, you can search and find about anything related to
			listed companies, funds, their distributions and announcements. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

func NewAccountant() *Expert {

	lib := []Function{Summary, History, Projection}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's transaction ledger.
		He can compute the relevant figures about the user's positions and dividend income.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's dividend ledger.
				You know how to use the Tools to extract relevant information about the user's assets and income.
				You are part of a team of experts, yours is everything about the user's ledger. They might ask
				you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's assets:
				  - per-asset holdings, cost basis and yields
				  - monthly dividend income history
				  - the 12-month income forecast
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

// dateSchema documents the optional date argument shared by every tool.
var dateSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: `The as-of date for the computation, in YYYY-MM-DD format. Today is the default.`,
}

var Summary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary lists all assets in the ledger on the given day, with their
		shares, cost basis, average cost, last and next dividend dates, trailing-twelve-month
		dividends and yields.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateSchema},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table with one row per asset.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "Summary", args, func(on divitrek.Date, l *divitrek.Ledger) (string, error) {
			return renderer.SummaryMarkdown(divitrek.NewSummaryReport(l, on, loadPrices(), loadSchedule())), nil
		})
	},
}

var History = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "History",
		Description: `History reports the monthly cash dividend income of every asset over the
		12 calendar months ending on the given day, with a monthly total.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateSchema},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table, one row per asset, one column per month.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "History", args, func(on divitrek.Date, l *divitrek.Ledger) (string, error) {
			return renderer.IncomeMarkdown(divitrek.NewIncomeReport(l, on)), nil
		})
	},
}

var Projection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Projection",
		Description: `Projection forecasts the dividend income of every asset over the 12
		calendar months following the given day. Amounts marked with * are estimated from
		payment history; unmarked amounts come from a declared schedule.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{"date": dateSchema},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table, one row per asset, one column per month.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "Projection", args, func(on divitrek.Date, l *divitrek.Ledger) (string, error) {
			return renderer.ForecastMarkdown(divitrek.NewForecastReport(l, on, loadSchedule())), nil
		})
	},
}

// respond runs a tool body over the decoded ledger and wraps the outcome in a
// FunctionResponse, errors included.
func respond(id, name string, args map[string]any, body func(divitrek.Date, *divitrek.Ledger) (string, error)) *genai.FunctionResponse {
	fail := func(err error) *genai.FunctionResponse {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"error": err.Error(),
			},
		}
	}

	on, err := parseDate(args)
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return fail(fmt.Errorf("could not load ledger: %w", err))
	}
	output, err := body(on, ledger)
	if err != nil {
		return fail(err)
	}
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// DecodeLedger decodes the ledger from the application's default ledger file.
// If the file does not exist, it returns a new empty ledger.
func DecodeLedger() (*divitrek.Ledger, error) {
	ledgerFile := "transactions.jsonl"
	f, err := os.Open(ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// If the file doesn't exist, it's an empty ledger.
			return divitrek.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", ledgerFile, err)
	}
	defer f.Close()

	ledger, rowErrs, err := divitrek.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", ledgerFile, err)
	}
	for _, rowErr := range rowErrs {
		fmt.Fprintln(os.Stderr, rowErr)
	}
	return ledger, nil
}

// loadPrices reads the default price snapshot, empty when absent.
func loadPrices() divitrek.Prices {
	f, err := os.Open("prices.jsonl")
	if err != nil {
		return nil
	}
	defer f.Close()
	prices, err := divitrek.DecodePrices(f)
	if err != nil {
		return nil
	}
	return prices
}

// loadSchedule reads the default declared schedule, empty when absent.
func loadSchedule() divitrek.Schedule {
	f, err := os.Open("schedule.jsonl")
	if err != nil {
		return nil
	}
	defer f.Close()
	schedule, err := divitrek.DecodeSchedule(f)
	if err != nil {
		return nil
	}
	return schedule
}

func parseDate(args map[string]any) (divitrek.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return divitrek.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return divitrek.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := divitrek.ParseDate(sdate)
	if err != nil {
		return divitrek.Today(), fmt.Errorf("argument 'date' must be a valid date in YYYY-MM-DD format, got %q", sdate)
	}

	return date, nil
}
