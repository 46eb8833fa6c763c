package copygen

import (
	"fmt"
	"strings"
)

func headlinePrompt(content, keyword string) string {
	return fmt.Sprintf(`Begin by replacing any misspelled keyword or keyword that includes unnecessary spaces (i.e. 'he lp' instead of 'help').
Use the correctly spelled keyword instead.

It is crucially important that the headline reflects the content.

Example:
Content: We are a SAAS Gym Company
Keyword: Gym
Headline: Gym Software for Fitness Centers

Content: We are a SAAS HomeCare Company
Keyword: HomeCare Nurse
Headline: HomeCare Nurse Management

Please generate ten headlines for a Google ad based on the following guideline and provided content (in markdown format) and keyword:

# Guideline:
* Titleize each word in the headline.
* The headline must include the keyword.
* The headline must be 25 characters or fewer.
* No punctuation or special characters are allowed.
* No emojis are allowed.

Please return the keyword and generated headlines.

# Content:
%s
# Keyword:
%s`, content, keyword)
}

func descriptionsPrompt(content string, keywords []string) string {
	return fmt.Sprintf(`Create 4 descriptions for a Google ad based on the following content and keywords.
They should be 80 characters or less including blank space.
They should each contain one of the keywords.
No emojis are allowed.
# Content:
%s
# Keywords:
%s`, content, strings.Join(keywords, ", "))
}

func businessDescriptionPrompt(content string) string {
	return fmt.Sprintf(`Create a business description based on the following content.
# Content:
%s`, content)
}

func campaignNamePrompt(content, location, campaignType string) string {
	return fmt.Sprintf(`Create a name for a Google ad based on the following content.
The name should be of the form
Glitch | Type | Location | One to Two word description of Content

An example:

Glitch | Prospecting | USA | AI Growth

Use the following content to generate the name:
# Content:
%s
# Location:
%s
# Type:
%s`, content, location, campaignType)
}

func sitelinkPrompt(url, content string) string {
	return fmt.Sprintf(`Generate a name, two descriptions and one google ad callout for this site link %s based on provided content (in markdown format) and following the guidelines provided.

# Guidelines:
* name and callout must be 25 characters or fewer.
* Descriptions must be 35 characters or fewer.
* No punctuation or special characters are allowed.
* No emojis are allowed.

# Content:
%s`, url, content)
}

func keywordExpansionPrompt(content string, keywords []string, direction string) string {
	return fmt.Sprintf(`Generate more %s keywords based on the following content and keywords.
Just return the keywords, no other text.
# Content:
%s
# Keywords:
%s`, direction, content, strings.Join(keywords, ", "))
}

func themePrompt(contextualInfo string, keywords []string) string {
	return fmt.Sprintf(`Derive a single short theme that captures what the following keywords have in common for this business.
# Context:
%s
# Keywords:
%s`, contextualInfo, strings.Join(keywords, ", "))
}

func fitnessPrompt(candidate string, training []string, theme string) string {
	return fmt.Sprintf(`Score from 0.0 to 1.0 how well the candidate keyword fits the theme derived from the training keywords.
# Theme:
%s
# Training keywords:
%s
# Candidate keyword:
%s`, theme, strings.Join(training, ", "), candidate)
}
