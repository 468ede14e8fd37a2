package asset

// DefaultLocale is the English string table for the keys rows are labelled with
const DefaultLocale = `
language = "en"

[strings]
CharacterStat_Health = "Health"
CharacterStat_Stamina = "Stamina"
CharacterStat_Mana = "Mana"
CharacterStat_Food = "Food"
CharacterStat_Drink = "Drink"
CharacterStat_Sleep = "Sleep"
CharacterStat_Corruption = "Corruption"
General_Max = "Max"
ItemStat_Cooldown = "Cooldown"
BuildingMenu_Supplier_Cost = "Cost"
ItemStat_Durability = "Durability"
ItemStat_AttackSpeed = "Attack Speed"
`
