// Package markdown is the lightweight line-oriented renderer used for news
// previews. It is a fixed chain of regular expression substitutions, not a
// CommonMark parser: no nesting, no escaping, the input is trusted.
package markdown

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Applied once each, in order.
var rules = []rule{
	{regexp.MustCompile(`(?im)^# (.*$)`), `<h1 class="text-2xl font-bold mb-4">${1}</h1>`},
	{regexp.MustCompile(`(?im)^## (.*$)`), `<h2 class="text-xl font-semibold mb-3">${1}</h2>`},
	{regexp.MustCompile(`(?im)^### (.*$)`), `<h3 class="text-lg font-medium mb-2">${1}</h3>`},
	{regexp.MustCompile(`(?im)\*\*(.*)\*\*`), `<strong class="font-semibold">${1}</strong>`},
	{regexp.MustCompile(`(?im)\*(.*)\*`), `<em class="italic">${1}</em>`},
	{regexp.MustCompile("(?im)```([^`]+)```"), `<pre class="bg-black/20 p-4 rounded-lg font-mono text-sm overflow-x-auto"><code>${1}</code></pre>`},
	{regexp.MustCompile("(?im)`([^`]+)`"), `<code class="bg-black/10 px-2 py-1 rounded font-mono text-sm">${1}</code>`},
	{regexp.MustCompile(`(?im)> (.*$)`), `<blockquote class="border-l-4 border-blue-500 pl-4 italic text-gray-600 dark:text-gray-400">${1}</blockquote>`},
	{regexp.MustCompile(`(?im)- (.*$)`), `<li class="ml-4">• ${1}</li>`},
	{regexp.MustCompile(`(?im)^\d+\. (.*$)`), `<li class="ml-4">${1}</li>`},
	{regexp.MustCompile(`\n`), `<br>`},
}

func Render(src string) string {
	out := src
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.replacement)
	}
	return out
}
