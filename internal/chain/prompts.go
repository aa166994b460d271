package chain

// faqSystemPrompt keeps the model grounded: it may only use the supplied
// context and must fall back to "I don't know" instead of inventing facts.
const faqSystemPrompt = `Given the question and context below, generate the answer based on the context only.
If you don't know the answer then, based on the context, say "I don't know". Don't make things up.`

// sqlSystemPrompt constrains generation to a single SELECT over the known
// product schema, delimited by <SQL></SQL> tags.
const sqlSystemPrompt = `You are an expert in understanding the database schema and generating SQL queries for a natural language question asked
pertaining to the data you have. The schema is provided in the schema tags.
<schema>
table: product

fields:
product_link - string (hyperlink to product)
title - string (name of the product)
brand - string (brand of the product)
price - integer (price of the product in Indian Rupees)
discount - float (discount on the product. 10 percent discount is represented as 0.1, 20 percent as 0.2, and such.)
avg_rating - float (average rating of the product. Range 0-5, 5 is the highest.)
total_ratings - integer (total number of ratings for the product)

</schema>
Make sure whenever you try to search for the brand name, the name can be in any case.
So, make sure to use %LIKE% to find the brand in condition. Never use "ILIKE".
Create a single SQL query for the question provided.
The query should have all the fields in SELECT clause (i.e. SELECT *)

Just the SQL query is needed, nothing more. Always provide the SQL in between the <SQL></SQL> tags.`

// summarySystemPrompt turns raw catalog rows into an itemized, human
// readable answer with a fixed example-driven format.
const summarySystemPrompt = `You are an assistant for an e-commerce store. You are given a customer question and the
matching rows from the product catalog. Write a short, friendly answer that lists each
product on its own line with its title, price, discount, rating and link, like this:

1. Campus Running Shoes: Rs. 1104 (35% off), Rated 4.4 - https://example.com/campus

Only mention products present in the data. Do not invent products or numbers.`
