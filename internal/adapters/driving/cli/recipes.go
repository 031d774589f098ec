package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// Output formats accepted by list --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	listOutput        string
	recipeName        string
	recipeIngredients string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all recipes",
	Long: `Fetch the recipe collection from the backend and print it.

Use --output to choose between a table (default), JSON or YAML.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	Long:  `Add a recipe. Both --name and --ingredients are required.`,
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a recipe",
	Long: `Change the name or ingredients of an existing recipe.

Fields that are not given keep their current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a recipe",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", OutputTable, "output format: table, json or yaml")

	addCmd.Flags().StringVarP(&recipeName, "name", "n", "", "recipe name")
	addCmd.Flags().StringVarP(&recipeIngredients, "ingredients", "i", "", "ingredients text")

	updateCmd.Flags().StringVarP(&recipeName, "name", "n", "", "new recipe name")
	updateCmd.Flags().StringVarP(&recipeIngredients, "ingredients", "i", "", "new ingredients text")

	rootCmd.AddCommand(listCmd, addCmd, updateCmd, deleteCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	book, err := openBook()
	if err != nil {
		return err
	}

	if err := book.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	recipes := book.State().Recipes

	switch strings.ToLower(listOutput) {
	case OutputJSON:
		return outputRecipesJSON(cmd, recipes)
	case OutputYAML:
		return outputRecipesYAML(cmd, recipes)
	case OutputTable, "":
		return outputRecipesTable(cmd, recipes)
	default:
		return fmt.Errorf("unknown output format %q", listOutput)
	}
}

func outputRecipesJSON(cmd *cobra.Command, recipes []domain.Recipe) error {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recipes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecipesYAML(cmd *cobra.Command, recipes []domain.Recipe) error {
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	data, err := yaml.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal recipes: %w", err)
	}
	cmd.Print(string(data))
	return nil
}

func outputRecipesTable(cmd *cobra.Command, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		cmd.Println("No recipes yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECIPE\tINGREDIENTS")
	for _, r := range recipes {
		// Multi-line ingredients are flattened to keep one row per recipe.
		ingredients := strings.Join(strings.Fields(r.Ingredients), " ")
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, ingredients)
	}
	return w.Flush()
}

func runAdd(cmd *cobra.Command, _ []string) error {
	book, err := openBook()
	if err != nil {
		return err
	}

	r, err := book.Submit(cmd.Context(), recipeName, recipeIngredients)
	if err != nil {
		return submitError("add", err)
	}

	cmd.Printf("Added recipe %s: %s\n", r.ID, r.Name)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	book, err := openBook()
	if err != nil {
		return err
	}

	if err := book.Initialize(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}
	if err := book.StartEdit(id); err != nil {
		return fmt.Errorf("recipe %s not found: %w", id, err)
	}

	form := book.State().Form
	name, ingredients := form.Name, form.Ingredients
	if cmd.Flags().Changed("name") {
		name = recipeName
	}
	if cmd.Flags().Changed("ingredients") {
		ingredients = recipeIngredients
	}

	r, err := book.Submit(cmd.Context(), name, ingredients)
	if err != nil {
		return submitError("update", err)
	}

	cmd.Printf("Updated recipe %s: %s\n", r.ID, r.Name)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	book, err := openBook()
	if err != nil {
		return err
	}

	if err := book.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	cmd.Printf("Deleted recipe %s\n", id)
	return nil
}

func submitError(op string, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("recipe and ingredients are required: %w", err)
	}
	return fmt.Errorf("failed to %s recipe: %w", op, err)
}
